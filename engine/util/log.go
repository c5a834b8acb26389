package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogTextures | LogAtlas | LogCache | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogTextures LogCategory = 1 << iota
	LogAtlas
	LogCache
	LogIO
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogTextureInfo(txt string) {
	log(LogTextures, LogLevelInfo, txt)
}

func LogTextureDebug(txt string) {
	log(LogTextures, LogLevelDebug, txt)
}

func LogTextureWarning(txt string) {
	log(LogTextures, LogLevelWarning, txt)
}

func LogTextureError(txt string) {
	log(LogTextures, LogLevelError, txt)
}

func LogAtlasInfo(txt string) {
	log(LogAtlas, LogLevelInfo, txt)
}

func LogAtlasDebug(txt string) {
	log(LogAtlas, LogLevelDebug, txt)
}

func LogAtlasError(txt string) {
	log(LogAtlas, LogLevelError, txt)
}

func LogCacheInfo(txt string) {
	log(LogCache, LogLevelInfo, txt)
}

func LogCacheDebug(txt string) {
	log(LogCache, LogLevelDebug, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}
