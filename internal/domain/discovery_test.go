package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

func newDefaultDiscovery() domain.FileDiscoveryFilter {
	return domain.NewFileDiscoveryFilter(
		adapter.NewLocalSourceFSAdapter(),
		domain.DefaultExclusionRuleSet(),
		domain.DefaultInclusionPolicy(),
	)
}

func TestFileDiscoveryFilter_Python(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "app/services/billing.py", "def charge(): pass")
	writeTestFile(t, root, "app/utils/money.py", "def to_cents(): pass")
	writeTestFile(t, root, "app/repositories/user_repository.py", "class Repo: pass")
	writeTestFile(t, root, "app/routes.py", "routes = []")
	writeTestFile(t, root, "app/main.py", "app = None")
	writeTestFile(t, root, "app/services/__init__.py", "")
	writeTestFile(t, root, "app/models/service_model.py", "class M: pass")
	writeTestFile(t, root, "app/controllers/user.py", "no keyword")
	writeTestFile(t, root, "tests/services/test_billing.py", "def test(): pass")
	writeTestFile(t, root, "venv/lib/site-packages/requests/utils.py", "vendored")
	writeTestFile(t, root, "node_modules/pkg/service.py", "vendored")
	writeTestFile(t, root, "app/services/readme.md", "docs")
	writeTestFile(t, root, "app/services/Helper.PY", "upper-case extension")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"app/repositories/user_repository.py",
		"app/routes.py",
		"app/services/Helper.PY",
		"app/services/billing.py",
		"app/utils/money.py",
	}, relPaths(files))

	for _, f := range files {
		assert.Equal(t, m.Path(root), f.Root)
		assert.Equal(t, m.Python, f.Type)
		assert.NotEmpty(t, f.Content)
	}
}

func TestFileDiscoveryFilter_NodeJSSkipsExistingTests(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "src/services/user.js", "module.exports = {}")
	writeTestFile(t, root, "src/services/user.test.js", "test('a', () => {})")
	writeTestFile(t, root, "src/services/user.spec.js", "it('a', () => {})")
	writeTestFile(t, root, "src/services/__tests__/user.js", "test('a', () => {})")
	writeTestFile(t, root, "coverage/lcov-report/utils.js", "/* report */")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.NodeJS, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/services/user.js"}, relPaths(files))
}

func TestFileDiscoveryFilter_PythonSkipsExistingTests(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "app/services/billing.py", "def charge(): pass")
	writeTestFile(t, root, "app/services/test_billing.py", "def test(): pass")
	writeTestFile(t, root, "app/services/billing_test.py", "def test(): pass")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app/services/billing.py"}, relPaths(files))
}

func TestFileDiscoveryFilter_ExcludedNamesAreCaseInsensitive(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "Tests/services/a.js", "x")
	writeTestFile(t, root, "NODE_MODULES/services/b.js", "x")
	writeTestFile(t, root, "src/services/c.js", "x")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.NodeJS, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/services/c.js"}, relPaths(files))
}

func TestFileDiscoveryFilter_UserExcludeRegex(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "src/services/orders.js", "x")
	writeTestFile(t, root, "src/services/legacy/orders.js", "x")
	writeTestFile(t, root, "src/utils/format.js", "x")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.NodeJS, []m.Path{m.Path(root)}, []string{`/legacy/`, `^src/utils/`})
	require.NoError(t, err)

	assert.Equal(t, []string{"src/services/orders.js"}, relPaths(files))
}

func TestFileDiscoveryFilter_InvalidRegex(t *testing.T) {
	_, err := newDefaultDiscovery().Discover(context.Background(), m.NodeJS, []m.Path{m.Path(t.TempDir())}, []string{"("})
	assert.Error(t, err)
}

func TestFileDiscoveryFilter_MultipleRootsKeepRootOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeTestFile(t, first, "z_service.py", "x")
	writeTestFile(t, second, "a_service.py", "x")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(first), m.Path(second)}, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, m.Path(first), files[0].Root)
	assert.Equal(t, m.Path(second), files[1].Root)
}

func TestFileDiscoveryFilter_OverlappingRootsAreNotDuplicated(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "services/pay.py", "x")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(root), m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Len(t, files, 1)
}

func TestFileDiscoveryFilter_EmptyResultIsNotAnError(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app/controllers/user.py", "no keyword")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileDiscoveryFilter_MissingRootIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "services/pay.py", "x")

	files, err := newDefaultDiscovery().Discover(context.Background(), m.Python, []m.Path{m.Path(root + "/missing"), m.Path(root)}, nil)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileDiscoveryFilter_EmptyKeywordListKeepsEverything(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app/controllers/user.py", "x")

	discovery := domain.NewFileDiscoveryFilter(adapter.NewLocalSourceFSAdapter(), domain.DefaultExclusionRuleSet(), domain.NewInclusionPolicy(nil))

	files, err := discovery.Discover(context.Background(), m.Python, []m.Path{m.Path(root)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/controllers/user.py"}, relPaths(files))
}

func TestFileDiscoveryFilter_UndetectedType(t *testing.T) {
	_, err := newDefaultDiscovery().Discover(context.Background(), m.Undetected, []m.Path{m.Path(t.TempDir())}, nil)
	assert.ErrorIs(t, err, domain.ErrProjectTypeUndetected)
}

func TestFileDiscoveryFilter_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "services/pay.py", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDefaultDiscovery().Discover(ctx, m.Python, []m.Path{m.Path(root)}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExclusionRuleSet(t *testing.T) {
	rules, err := domain.NewExclusionRuleSet([]string{"build*"}, []string{"*.min.js", "Setup.py"}, []string{`generated`})
	require.NoError(t, err)

	assert.True(t, rules.ExcludesDir("build-output"))
	assert.False(t, rules.ExcludesDir("src"))
	assert.True(t, rules.ExcludesFile("lib/app.MIN.js"))
	assert.True(t, rules.ExcludesFile("setup.py"))
	assert.True(t, rules.ExcludesFile("a/buildx/b.py"))
	assert.True(t, rules.ExcludesFile("src/generated_service.py"))
	assert.False(t, rules.ExcludesFile("src/services/app.js"))

	_, err = domain.NewExclusionRuleSet([]string{"["}, nil, nil)
	assert.Error(t, err)
}

func TestInclusionPolicy(t *testing.T) {
	policy := domain.DefaultInclusionPolicy()

	assert.True(t, policy.Includes("app/UserService.java"))
	assert.True(t, policy.Includes("src/Helpers/dates.js"))
	assert.True(t, policy.Includes("api/routes/v1.py"))
	assert.False(t, policy.Includes("app/controllers/user.py"))
}
