package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	adaptermocks "testgenie.dev/pkg/testgenie/internal/adapter/mocks"
	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

func specifiers(refs []m.ImportReference) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Specifier)
	}

	return out
}

func TestImportResolver_FindImports(t *testing.T) {
	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())

	text := "import os\n" +
		"from app.utils.money import to_cents\n" +
		"from . import sibling\n" +
		"from .models import Invoice\n" +
		"    import json\n" +
		"x = 'import not_at_start'\n" +
		"# from commented.out import thing\r\n" +
		"import os\r\n" +
		"import static com.shop.Util.helper;\n" +
		"from app.services import billing"

	got := specifiers(resolver.FindImports(text))

	assert.Equal(t, []string{
		"os",
		"app.utils.money",
		".",
		".models",
		"json",
		"os",
		"com.shop.Util.helper",
		"app.services",
	}, got)
}

func TestImportResolver_FindImports_None(t *testing.T) {
	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())

	assert.Empty(t, resolver.FindImports("def f():\n    return 1\n"))
	assert.Empty(t, resolver.FindImports(""))
}

func TestImportResolver_Resolve_Python(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeTestFile(t, first, "app/utils/money.py", "def to_cents(x): pass")
	writeTestFile(t, second, "app/utils/money.py", "shadowed")
	writeTestFile(t, second, "app/models/__init__.py", "from .invoice import Invoice")
	require.NoError(t, os.MkdirAll(filepath.Join(first, "app", "empty"), 0o755))

	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())
	refs := []m.ImportReference{
		{Specifier: "app.utils.money"},
		{Specifier: "os"},
		{Specifier: "app.models"},
		{Specifier: "app.utils.money"},
		{Specifier: "app.empty"},
		{Specifier: "."},
	}

	got := resolver.Resolve(context.Background(), refs, []m.Path{m.Path(first), m.Path(second)}, m.Python)

	require.Len(t, got, 2)
	assert.Equal(t, "app.utils.money", got[0].Specifier)
	assert.Equal(t, m.Path(filepath.Join(first, "app", "utils", "money.py")), got[0].Path)
	assert.Equal(t, "def to_cents(x): pass", string(got[0].Content))
	assert.Equal(t, "app.models", got[1].Specifier)
	assert.Equal(t, m.Path(filepath.Join(second, "app", "models", "__init__.py")), got[1].Path)
}

func TestImportResolver_Resolve_ModuleFileBeforePackageInit(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "pkg/util.py", "module")
	writeTestFile(t, root, "pkg/util/__init__.py", "package")

	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())
	got := resolver.Resolve(context.Background(), []m.ImportReference{{Specifier: "pkg.util"}}, []m.Path{m.Path(root)}, m.Python)

	require.Len(t, got, 1)
	assert.Equal(t, "module", string(got[0].Content))
}

func TestImportResolver_Resolve_JavaMavenLayout(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, root, "src/main/java/com/shop/service/PriceService.java", "class PriceService {}")
	writeTestFile(t, root, "src/test/java/com/shop/support/Fixtures.java", "class Fixtures {}")
	writeTestFile(t, root, "com/shop/util/Money.java", "class Money {}")

	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())
	refs := []m.ImportReference{
		{Specifier: "com.shop.util.Money"},
		{Specifier: "com.shop.service.PriceService"},
		{Specifier: "com.shop.support.Fixtures"},
		{Specifier: "java.util.List"},
	}

	got := resolver.Resolve(context.Background(), refs, []m.Path{m.Path(root)}, m.Java)

	require.Len(t, got, 3)
	assert.Equal(t, m.Path(filepath.Join(root, "com", "shop", "util", "Money.java")), got[0].Path)
	assert.Equal(t, m.Path(filepath.Join(root, "src", "main", "java", "com", "shop", "service", "PriceService.java")), got[1].Path)
	assert.Equal(t, "class PriceService {}", string(got[1].Content))
	assert.Equal(t, m.Path(filepath.Join(root, "src", "test", "java", "com", "shop", "support", "Fixtures.java")), got[2].Path)
}

func TestImportResolver_Resolve_NodeJSIsNoop(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "lib/db.js", "module.exports = {}")

	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())
	got := resolver.Resolve(context.Background(), []m.ImportReference{{Specifier: "lib.db"}}, []m.Path{m.Path(root)}, m.NodeJS)

	assert.Empty(t, got)
}

func TestImportResolver_Resolve_UnreadableIsOmitted(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	info := writeTestFile(t, root, "app/secret.py", "x")

	stat, err := os.Stat(string(info))
	require.NoError(t, err)

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	candidate := m.Path(filepath.Join(root, "app", "secret.py"))
	initCandidate := m.Path(filepath.Join(root, "app", "secret", "__init__.py"))

	fsAdapter.EXPECT().JoinPath(ctx, root, filepath.FromSlash("app/secret.py")).Return(candidate)
	fsAdapter.EXPECT().JoinPath(ctx, root, filepath.FromSlash("app/secret/__init__.py")).Return(initCandidate)
	fsAdapter.EXPECT().FileInfo(ctx, candidate).Return(stat, nil)
	fsAdapter.EXPECT().FileInfo(ctx, initCandidate).Return(nil, os.ErrNotExist)
	fsAdapter.EXPECT().ReadFile(ctx, candidate).Return(nil, errors.New("permission denied"))

	resolver := domain.NewImportResolver(fsAdapter)
	got := resolver.Resolve(ctx, []m.ImportReference{{Specifier: "app.secret"}}, []m.Path{m.Path(root)}, m.Python)

	assert.Empty(t, got)
	fsAdapter.AssertNotCalled(t, "ReadFile", mock.Anything, initCandidate)
}

func TestImportResolver_Resolve_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app/utils/money.py", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := domain.NewImportResolver(adapter.NewLocalSourceFSAdapter())
	got := resolver.Resolve(ctx, []m.ImportReference{{Specifier: "app.utils.money"}}, []m.Path{m.Path(root)}, m.Python)

	assert.Empty(t, got)
}
