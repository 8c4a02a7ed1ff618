package dto

type PluginInfo struct {
	Name         string
	Version      string
	Enabled      bool
	Binary       string
	Capabilities []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

// InsightInput names the plugin and the look-back window to report
// on. Days of zero falls back to one week.
type InsightInput struct {
	PluginName string
	Days       int
}

type InsightOutput struct {
	PluginName  string
	Title       string
	Body        string
	Suggestions []string
}
