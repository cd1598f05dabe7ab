// Package platform contains OS integration: the external media player that
// probes sources over HTTP and hands them to the system media handler.
package platform
