//go:build basic || database || integration

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// sharedExamvizPath holds the path to a shared examviz binary built once for all tests.
	sharedExamvizPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getExamvizBinary returns the path to the examviz binary, building it once if needed.
func getExamvizBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "examviz-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		examvizPath := filepath.Join(tempDir, "examviz")
		buildCmd := exec.Command("go", "build", "-o", examvizPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build examviz: %v", err))
		}

		sharedExamvizPath = examvizPath
	})

	return sharedExamvizPath
}

// runExamvizCommand runs the binary in dir and returns its combined output.
func runExamvizCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getExamvizBinary(), args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// writeArchive creates workDir/data with a small but complete archive.
// The timeline covers 1888-1962 with one document per year except 1944 and 1945.
func writeArchive(t *testing.T, workDir string) string {
	t.Helper()
	dataDir := filepath.Join(workDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	var timeline strings.Builder
	timeline.WriteString("Year,Document Count\n")
	for y := 1888; y <= 1962; y++ {
		count := 1
		if y == 1944 || y == 1945 {
			count = 0
		}
		fmt.Fprintf(&timeline, "%d,%d\n", y, count)
	}

	files := map[string]string{
		"doc_timeline.csv":  timeline.String(),
		"subject_names.csv": "Code,Name\nENG,ENGLISH\nGAE,GAELIC\nFRE,FRENCH\n",
		"merged_textinfo_by_subject_and_year.csv": "Subject,Year,Document Count\n" +
			"ENGLISH,1900,20\nENGLISH,1920,15\nFRENCH,1900,8\nLATIN,1910,6\n" +
			"GAELIC,1930,2\nGAELIC (NATIVE SPEAKERS),1950,3\nHISTORY,1925,11\n",
		"educationcomms.txt": "Minutes of the Department. " +
			"Every candidate for the Leaving certificate shall be examined in English composition. " +
			"Latin is optional.",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}
	return dataDir
}
