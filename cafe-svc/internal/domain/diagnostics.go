package domain

const (
	BackendRunning = "✅ Running"

	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseAvailable      = "✅ Available"
	DatabaseWorking        = "✅ Connected & Working"
	DatabaseNotInitialized = "⚠️  Available but not initialized"
	DatabaseErrorPrefix    = "⚠️  Connected but Error: "
	DatabaseProbeFailure   = "❌ Error: "

	EnvSet    = "✅ Set"
	EnvNotSet = "❌ Not Set"

	StatusConnected    = "Connected"
	StatusNotConnected = "Not Connected"

	CacheConnected   = "✅ Connected"
	CacheErrorPrefix = "⚠️  Error: "
	CacheDisabled    = "Disabled"

	MaxReportedCollections = 10
	MaxReportedErrorLength = 80
)

type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}

func NewDiagnosticReport() DiagnosticReport {
	return DiagnosticReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
		Cache:            CacheDisabled,
	}
}

// Truncate keeps at most n characters of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func SetFlag(set bool) *string {
	v := EnvNotSet
	if set {
		v = EnvSet
	}
	return &v
}
