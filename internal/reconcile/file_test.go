package reconcile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reponame/internal/gitrepo"
	"reponame/internal/logging"
)

// initBareRemote creates a bare repository under root and returns its path.
func initBareRemote(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	_, err := git.PlainInit(dir, true)
	require.NoError(t, err)
	return dir
}

// initLocalRepo creates a working repository under root with an origin
// remote, chdirs into it and returns the opened accessor.
func initLocalRepo(t *testing.T, root, name, remoteURL string) (string, *gitrepo.Repo) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.Mkdir(dir, 0o755))

	raw, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = raw.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	})
	require.NoError(t, err)

	t.Chdir(dir)
	repo, err := gitrepo.Open(dir)
	require.NoError(t, err)
	return dir, repo
}

func newTestReconciler(t *testing.T, repo *gitrepo.Repo) (*Reconciler, *bytes.Buffer) {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	var out bytes.Buffer
	return New(repo, Options{Out: &out, Logger: logger}), &out
}

// canonicalRoot gives a symlink-free temp root so expected paths can be
// compared literally against the reconciler's canonical forms.
func canonicalRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func TestPullFileUpToDate(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "project.git")
	_, repo := initLocalRepo(t, root, "project", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))
	assert.Contains(t, out.String(), "Directory name and remote URL already up-to-date")
}

func TestPullFileRenamesDirectory(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "new-name.git")
	_, repo := initLocalRepo(t, root, "old-name", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))

	assert.Contains(t, out.String(), "Renaming directory")
	assert.DirExists(t, filepath.Join(root, "new-name"))
	assert.NoDirExists(t, filepath.Join(root, "old-name"))
}

func TestPullFilePreservesRelativeURL(t *testing.T) {
	root := canonicalRoot(t)
	initBareRemote(t, root, "new-name.git")
	_, repo := initLocalRepo(t, root, "old-name", "../new-name.git")
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))

	// The relative URL still resolves to the same target, so only the
	// directory is renamed.
	assert.NotContains(t, out.String(), "Changing 'origin' remote")
	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "../new-name.git", url)
	assert.DirExists(t, filepath.Join(root, "new-name"))
}

func TestPullFileResolvesSymlinkedURL(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "project.git")
	link := filepath.Join(root, "link.git")
	require.NoError(t, os.Symlink(bare, link))

	_, repo := initLocalRepo(t, root, "project", "file://"+link)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))

	assert.Contains(t, out.String(), "Changing 'origin' remote")
	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "file://"+bare, url)
}

func TestPullFileKeepsBareAbsoluteForm(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "project.git")
	link := filepath.Join(root, "link.git")
	require.NoError(t, os.Symlink(bare, link))

	// The original URL carries no file:// prefix; the rewritten one must
	// not grow one.
	_, repo := initLocalRepo(t, root, "project", link)
	rec, _ := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))

	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, bare, url)
}

func TestPullFileDryRun(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "new-name.git")
	link := filepath.Join(root, "link.git")
	require.NoError(t, os.Symlink(bare, link))

	_, repo := initLocalRepo(t, root, "old-name", "file://"+link)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(true))

	assert.Contains(t, out.String(), "Would change 'origin' remote")
	assert.Contains(t, out.String(), "Would rename directory")

	// Nothing moved, nothing rewritten.
	assert.DirExists(t, filepath.Join(root, "old-name"))
	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "file://"+link, url)
}

func TestPullFileIdempotent(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "new-name.git")
	dir, repo := initLocalRepo(t, root, "new-name", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Pull(false))
	first := out.String()
	require.NoError(t, rec.Pull(false))

	assert.Contains(t, first, "already up-to-date")
	assert.Contains(t, out.String()[len(first):], "already up-to-date")
	assert.DirExists(t, dir)
}

func TestPushFileRenamesRemote(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "old-remote.git")
	_, repo := initLocalRepo(t, root, "local-name", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Push(false))

	assert.Contains(t, out.String(), "Renaming directory")
	assert.DirExists(t, filepath.Join(root, "local-name.git"))
	assert.NoDirExists(t, bare)

	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.Join(root, "local-name.git"), url)
}

func TestPushFileAlreadyMatches(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "project.git")
	_, repo := initLocalRepo(t, root, "project", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Push(false))
	assert.Contains(t, out.String(), "Remote repository name already matches the local directory name")
	assert.DirExists(t, bare)
}

func TestPushFileMissingRemote(t *testing.T) {
	root := canonicalRoot(t)
	_, repo := initLocalRepo(t, root, "project", "file://"+filepath.Join(root, "gone.git"))
	rec, _ := newTestReconciler(t, repo)

	err := rec.Push(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote repository does not exist")
}

func TestPushFileDryRun(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "old-remote.git")
	_, repo := initLocalRepo(t, root, "local-name", "file://"+bare)
	rec, out := newTestReconciler(t, repo)

	require.NoError(t, rec.Push(true))

	assert.Contains(t, out.String(), "Would rename directory")
	assert.Contains(t, out.String(), "Would change 'origin' remote")

	assert.DirExists(t, bare)
	url, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "file://"+bare, url)
}

func TestPullEmitsDiagnostics(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "new-name.git")
	_, repo := initLocalRepo(t, root, "old-name", "file://"+bare)

	logger, logBuf := logging.NewTestLogger()
	var out bytes.Buffer
	rec := New(repo, Options{Out: &out, Logger: logger})

	require.NoError(t, rec.Pull(false))

	// The debug log carries the computed action set and a timing entry.
	assert.Contains(t, logBuf.String(), "actions")
	assert.Contains(t, logBuf.String(), "Performance")
	assert.Contains(t, logBuf.String(), "pull")
}

func TestFetchNameFileRemote(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "true-name.git")
	_, repo := initLocalRepo(t, root, "whatever", "file://"+bare)
	rec, _ := newTestReconciler(t, repo)

	name, err := rec.FetchName()
	require.NoError(t, err)
	assert.Equal(t, "true-name", name)
}

func TestMissingRemoteConfigured(t *testing.T) {
	root := canonicalRoot(t)
	dir := filepath.Join(root, "project")
	require.NoError(t, os.Mkdir(dir, 0o755))
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	repo, err := gitrepo.Open(dir)
	require.NoError(t, err)
	rec, _ := newTestReconciler(t, repo)

	err = rec.Pull(false)
	var noRemote *gitrepo.NoRemoteError
	require.ErrorAs(t, err, &noRemote)
	assert.Equal(t, "origin", noRemote.Name)
}

// Alternate remote names are honored end to end, not just origin.
func TestCustomRemoteName(t *testing.T) {
	root := canonicalRoot(t)
	bare := initBareRemote(t, root, "upstream-name.git")
	dir := filepath.Join(root, "local")
	require.NoError(t, os.Mkdir(dir, 0o755))

	raw, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = raw.CreateRemote(&gitconfig.RemoteConfig{
		Name: "upstream",
		URLs: []string{"file://" + bare},
	})
	require.NoError(t, err)

	t.Chdir(dir)
	repo, err := gitrepo.Open(dir)
	require.NoError(t, err)

	logger, _ := logging.NewTestLogger()
	var out bytes.Buffer
	rec := New(repo, Options{RemoteName: "upstream", Out: &out, Logger: logger})

	require.NoError(t, rec.Pull(false))
	assert.DirExists(t, filepath.Join(root, "upstream-name"))
}
