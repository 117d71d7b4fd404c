package testkit

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ConfigEntry is one API group in a suite's master file.
type ConfigEntry struct {
	ServiceName       string `json:"serviceName"`
	FilePath          string `json:"filePath"`
	ScenariosFileName string `json:"scenariosFileName"`
	ServiceURL        string `json:"serviceUrl"`
	HTTPMethodType    string `json:"httpMethodType"`
}

// HandlerFactory builds a fresh handler for one suite entry, typically over
// a newly seeded database so entries cannot see each other's writes.
type HandlerFactory func(t *testing.T) http.Handler

// RunSuite executes every entry of the master file at masterConfigPath.
// Scenarios within an entry share one handler and run in file order;
// a scenario without URL or method inherits the entry's.
func RunSuite(t *testing.T, masterConfigPath string, newHandler HandlerFactory) {
	t.Helper()

	absMasterPath, err := filepath.Abs(masterConfigPath)
	if err != nil {
		t.Fatalf("testkit: resolve master config path %q: %v", masterConfigPath, err)
	}

	data, err := os.ReadFile(absMasterPath)
	if err != nil {
		t.Fatalf("testkit: read master config %q: %v", absMasterPath, err)
	}

	var entries []ConfigEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("testkit: parse master config %q: %v", absMasterPath, err)
	}

	baseDir := filepath.Dir(absMasterPath)

	for _, entry := range entries {
		t.Run(entry.ServiceName, func(t *testing.T) {
			scenarioPath := filepath.Join(baseDir, entry.FilePath, entry.ScenariosFileName)
			scenarios, err := LoadScenarioArray(scenarioPath)
			if err != nil {
				t.Fatalf("testkit: load scenario array %q: %v", scenarioPath, err)
			}

			handler := newHandler(t)
			for _, s := range scenarios {
				if s.RequestURL == "" {
					s.RequestURL = entry.ServiceURL
				}
				if s.RequestMethod == "" {
					s.RequestMethod = strings.ToUpper(entry.HTTPMethodType)
				}
				if s.RequestMethod == "" {
					s.RequestMethod = http.MethodGet
				}

				t.Run(s.Name, func(t *testing.T) {
					runScenario(t, handler, s)
				})
			}
		})
	}
}
