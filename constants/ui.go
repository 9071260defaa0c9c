package constants

// Shell identity shown in the prompt
const (
	ShellUser = "engineer"
	ShellHost = "portfolio"
)

// Shell window layout
const (
	ShellMaxWidth    = 96
	ShellMinWidth    = 40
	ShellMaxHistory  = 200
	ShellTitleHeight = 1
)

// HUD layout
const (
	HUDRows        = 2
	HoverCardWidth = 28
)

// Log file
const (
	LogDir      = "logs"
	LogFileName = "portfolio.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Config discovery
const (
	DefaultConfigFile = "portfolio.toml"
	DefaultEnvFile    = ".env"
	EnvPrefix         = "PORTFOLIO_"
)
