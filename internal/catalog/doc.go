package catalog

// Package catalog supplies catalog entries to the screens. Sources fetch the
// entries (static demo list, YAML file, YouTube playlist) and the Loader owns
// the fetch lifecycle: loading, error with retry, and teardown after which
// late results are discarded.
