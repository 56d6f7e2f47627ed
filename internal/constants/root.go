package constants

import "time"

const (
	AppName            = "leetdash"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/leetdash/state.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ProblemURLTemplate is the outbound link for a problem; the slug is inserted verbatim.
	ProblemURLTemplate = "https://leetcode.com/problems/%s/"

	// ToastDuration is how long the copy-feedback toast stays visible.
	ToastDuration = 1500 * time.Millisecond

	// Assignment defaults, matching the daily generator.
	DailyTarget = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "leetdash-"

	// Notify constants
	NotifyTimeout          = 2 * time.Second
	NotifierLockfileName   = "leetdash-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.sauravks.leetdash"
)
