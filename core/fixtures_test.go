package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `Report of the Committee of Council on Education in Scotland.
A pass in English is required for every candidate presented for the Leaving certificate of the Department.
Latin and French remain popular.
No candidate shall receive a certificate unless the paper in English has been passed at the Lower Grade.
Short English certificate line.`

// writeDataDir creates a complete data directory under t.TempDir and returns its path.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	var timeline strings.Builder
	timeline.WriteString("Year,Document Count\n")
	for y := 1936; y <= 1948; y++ {
		count := y - 1900
		if y == 1944 || y == 1945 {
			count = 0
		}
		fmt.Fprintf(&timeline, "%d,%d\n", y, count)
	}

	files := map[string]string{
		schema.TimelineFile:     timeline.String(),
		schema.SubjectNamesFile: "Code,Name\nENG,ENGLISH\nGAE,GAELIC\n",
		schema.SubjectYearsFile: "Subject,Year,Document Count\n" +
			"ENGLISH,1936,10\n" +
			"ENGLISH,1937,12\n" +
			"GAELIC,1936,2\n" +
			"GAELIC (LEARNERS),1937,3\n" +
			"FRENCH,1936,5\n" +
			"LATIN,1937,7\n" +
			"MATHEMATICS,1936,40\n",
		schema.CorpusFile: sampleCorpus,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}
