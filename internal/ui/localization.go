package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyLoadingCatalog    = "loading_catalog"
	KeyCatalogLoadFailed = "catalog_load_failed"
	KeyRetry             = "retry"
	KeyPlay              = "play"
	KeyPlayVideo         = "play_video"
	KeyDetails           = "details"
	KeyBack              = "back"
	KeyDuration          = "duration"
	KeyVideoNotFound     = "video_not_found"
	KeyBuffering         = "buffering"
	KeyPlaying           = "playing"
	KeyPlaybackFailed    = "playback_failed"
	KeyEmptyCatalog      = "empty_catalog"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyCatalogSource     = "catalog_source"
	KeyCatalogFile       = "catalog_file"
	KeyPlaylist          = "playlist"
	KeyFetchDelay        = "fetch_delay"
	KeyLogLevel          = "log_level"
	KeyProbeDurations    = "probe_durations"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyReloadCatalog     = "reload_catalog"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Video Catalog",
		KeyLoadingCatalog:    "Loading catalog…",
		KeyCatalogLoadFailed: "Failed to load catalog.",
		KeyRetry:             "Retry",
		KeyPlay:              "Play",
		KeyPlayVideo:         "Play Video",
		KeyDetails:           "Details",
		KeyBack:              "Back",
		KeyDuration:          "Duration",
		KeyVideoNotFound:     "Video not found",
		KeyBuffering:         "Buffering…",
		KeyPlaying:           "Playing in system player",
		KeyPlaybackFailed:    "Unable to play this stream.",
		KeyEmptyCatalog:      "The catalog is empty.",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyCatalogSource:     "Catalog Source",
		KeyCatalogFile:       "Catalog File",
		KeyPlaylist:          "Playlist URL or ID",
		KeyFetchDelay:        "Demo Fetch Delay (ms)",
		KeyLogLevel:          "Log Level",
		KeyProbeDurations:    "Probe durations with ffprobe",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyReloadCatalog:     "Reload Catalog",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Видеокаталог",
		KeyLoadingCatalog:    "Загрузка каталога…",
		KeyCatalogLoadFailed: "Не удалось загрузить каталог.",
		KeyRetry:             "Повторить",
		KeyPlay:              "Смотреть",
		KeyPlayVideo:         "Смотреть видео",
		KeyDetails:           "Подробнее",
		KeyBack:              "Назад",
		KeyDuration:          "Длительность",
		KeyVideoNotFound:     "Видео не найдено",
		KeyBuffering:         "Буферизация…",
		KeyPlaying:           "Воспроизводится в системном плеере",
		KeyPlaybackFailed:    "Не удалось воспроизвести поток.",
		KeyEmptyCatalog:      "Каталог пуст.",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyCatalogSource:     "Источник каталога",
		KeyCatalogFile:       "Файл каталога",
		KeyPlaylist:          "URL или ID плейлиста",
		KeyFetchDelay:        "Задержка демо-загрузки (мс)",
		KeyLogLevel:          "Уровень логирования",
		KeyProbeDurations:    "Определять длительность через ffprobe",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyReloadCatalog:     "Обновить каталог",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Catálogo de Vídeos",
		KeyLoadingCatalog:    "Carregando catálogo…",
		KeyCatalogLoadFailed: "Falha ao carregar o catálogo.",
		KeyRetry:             "Tentar novamente",
		KeyPlay:              "Reproduzir",
		KeyPlayVideo:         "Reproduzir Vídeo",
		KeyDetails:           "Detalhes",
		KeyBack:              "Voltar",
		KeyDuration:          "Duração",
		KeyVideoNotFound:     "Vídeo não encontrado",
		KeyBuffering:         "Carregando…",
		KeyPlaying:           "Reproduzindo no player do sistema",
		KeyPlaybackFailed:    "Não foi possível reproduzir este stream.",
		KeyEmptyCatalog:      "O catálogo está vazio.",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyCatalogSource:     "Fonte do Catálogo",
		KeyCatalogFile:       "Arquivo do Catálogo",
		KeyPlaylist:          "URL ou ID da Playlist",
		KeyFetchDelay:        "Atraso do Demo (ms)",
		KeyLogLevel:          "Nível de Log",
		KeyProbeDurations:    "Detectar duração com ffprobe",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyReloadCatalog:     "Recarregar Catálogo",
	}
}
