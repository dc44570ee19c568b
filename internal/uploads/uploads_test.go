package uploads

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"mon cv (final).pdf":     "mon_cv_final_.pdf",
		"../../etc/passwd":       "passwd",
		"..\\..\\windows\\x.pdf": "x.pdf",
		"résumé.pdf":             "r_sum_.pdf",
		"///":                    "file",
		"normal-file_1.pdf":      "normal-file_1.pdf",
	}
	for input, want := range cases {
		require.Equal(t, want, SanitizeFilename(input), "input %q", input)
	}
}

func TestSaveCV(t *testing.T) {
	store := NewStore(t.TempDir())

	filename, err := store.SaveCV(3, "My CV.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filename, "cv_3_"))
	require.True(t, strings.HasSuffix(filename, "My_CV.pdf"))

	data, err := os.ReadFile(filepath.Join(store.CVDir(), filename))
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4", string(data))
}

func TestSaveCV_RejectsNonPDF(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.SaveCV(3, "cv.docx", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrDisallowedExtension)
}

func TestSaveProfileImage_RejectsUnknownExtension(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.SaveProfileImage(3, "avatar.svg", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrDisallowedExtension)

	filename, err := store.SaveProfileImage(3, "avatar.PNG", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filename, "profile_3_"))
}

func TestFetchCV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	store := NewStore(t.TempDir())
	filename, err := store.FetchCV(3, server.URL, "remote cv")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(filename, "remote_cv.pdf"))

	_, err = os.Stat(filepath.Join(store.CVDir(), filename))
	require.NoError(t, err)
}

func TestFetchCV_RejectsNonPDFContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	store := NewStore(t.TempDir())
	_, err := store.FetchCV(3, server.URL, "")
	require.ErrorIs(t, err, ErrNotPDF)
}

func TestFetchCV_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	store := NewStore(t.TempDir())
	_, err := store.FetchCV(3, server.URL, "")
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestOpenCV_StripsPathComponents(t *testing.T) {
	store := NewStore(t.TempDir())

	filename, err := store.SaveCV(3, "cv.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	f, err := store.OpenCV("../cv/" + filename)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, filepath.Join(store.CVDir(), filename), f.Name())
}
