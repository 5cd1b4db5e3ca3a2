package assemble

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/patternforge/internal/config"
)

func testConfig(root string) *config.Config {
	j := func(p string) string { return filepath.ToSlash(filepath.Join(root, p)) }
	cfg := config.Default()
	cfg.Layouts = []string{j("src/layouts/*.html")}
	cfg.LayoutIncludes = []string{j("src/layouts/includes/*.html")}
	cfg.Views = []string{j("src/views/**/*.html")}
	cfg.Materials = []string{j("src/materials/**/*.html")}
	cfg.Blocks = []string{j("src/blocks/**/*.html")}
	cfg.Partials = []string{j("src/partials/**/*.html")}
	cfg.Data = []string{j("src/data/**/*.{json,yml}")}
	cfg.Docs = []string{j("src/docs/**/*.md")}
	cfg.Dest = filepath.Join(root, "dist")
	return cfg
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runAssembler(t *testing.T, cfg *config.Config) []error {
	t.Helper()
	var errs []error
	a := New(Options{Config: cfg, OnError: func(err error) { errs = append(errs, err) }})
	a.Run()
	return errs
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestRun_ViewWrappedInDefaultLayout(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "<html><body>{% body %}</body></html>")
	writeSource(t, root, "src/views/index.html", "<h1>{{title}}</h1>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "<html>")
	require.Contains(t, out, "<h1>")
}

func TestRun_NamespacedFieldResolvesFromMaterialData(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/materials/components/01-button.html",
		"---\nlabel: Click\n---\n<button>{{label}}</button>")
	// The view declares a same-named field; the material's own data must
	// win inside the partial.
	writeSource(t, root, "src/views/index.html",
		"---\nlabel: Override\n---\n{{material \"button\"}}")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "Click")
	require.NotContains(t, out, "Override")
}

func TestRun_PartialInvocationFromView(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/materials/components/badge.html",
		"---\ntext: New\n---\n<span>{{text}}</span>")
	writeSource(t, root, "src/views/index.html", "{{> badge}}")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "<span>")
	require.Contains(t, out, "New")
}

func TestRun_DestOverrideAndDestCopy(t *testing.T) {
	root := t.TempDir()
	custom := filepath.ToSlash(filepath.Join(root, "custom", "out.html"))
	copyDest := filepath.ToSlash(filepath.Join(root, "mirror", "copy.html"))
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/views/special.html",
		"---\ndest: "+custom+"\ndest-copy: "+copyDest+"\n---\n<p>here</p>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	// Not at the default path.
	_, err := os.Stat(filepath.Join(root, "dist", "special.html"))
	require.True(t, os.IsNotExist(err))

	first, err := os.ReadFile(filepath.FromSlash(custom))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.FromSlash(copyDest))
	require.NoError(t, err)
	require.Equal(t, first, second)

	// One page plus one copy, counted apart.
	report := readOutput(t, filepath.Join(root, "dist", "build-report.json"))
	require.Contains(t, report, `"pages_written": 1`)
	require.Contains(t, report, `"copies_written": 1`)
}

func TestRun_LayoutOverrideFromFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "DEFAULT {% body %}")
	writeSource(t, root, "src/layouts/bare.html", "BARE {% body %}")
	writeSource(t, root, "src/views/index.html", "---\nlayout: bare\n---\n<p>x</p>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "BARE")
	require.NotContains(t, out, "DEFAULT")
}

func TestRun_LayoutWithoutMarker_EmittedVerbatim(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "<html><body>static</body></html>")
	writeSource(t, root, "src/views/index.html", "<p>dropped</p>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "static")
	require.NotContains(t, out, "dropped")
}

func TestRun_MaterialBlock_SelfRenderedMarkupInjected(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/layouts/block.html",
		"<main>{% body %}</main><section>{{{block-markup}}}</section>")
	writeSource(t, root, "src/blocks/banner.html",
		"---\nmsg: Hello\n---\n<b>{{msg}}</b>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "banner.html"))
	require.Contains(t, out, "<main>")
	require.Contains(t, out, "<section>")
	require.Contains(t, out, "Hello")
}

func TestRun_DataFilesExposedByFilenameID(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/data/site.yml", "title: Pattern Library\n")
	writeSource(t, root, "src/data/nav.json", `{"links": ["home"]}`)
	writeSource(t, root, "src/views/index.html", "<h1>{{site.title}}</h1>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "Pattern Library")
}

func TestRun_LayoutInclude_UsableAsPartial(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{{> head}}{% body %}")
	writeSource(t, root, "src/layouts/includes/head.html", "<head><title>pf</title></head>")
	writeSource(t, root, "src/views/index.html", "<p>x</p>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "<title>")
}

func TestRun_BuildReportWritten(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/materials/components/a.html", "<a>")
	writeSource(t, root, "src/views/index.html", "<p>x</p>")

	errs := runAssembler(t, testConfig(root))
	require.Empty(t, errs)

	report := readOutput(t, filepath.Join(root, "dist", "build-report.json"))
	require.Contains(t, report, `"run_id"`)
	require.Contains(t, report, `"pages_written": 1`)
	require.Contains(t, report, `"materials": 1`)
}

func TestRun_ParseFailure_RoutedToCallbackAndRunContinues(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	// Front matter without a closing delimiter.
	writeSource(t, root, "src/materials/components/broken.html", "---\nlabel: x\n<b>")
	writeSource(t, root, "src/views/index.html", "<p>still built</p>")

	errs := runAssembler(t, testConfig(root))
	require.NotEmpty(t, errs)

	out := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Contains(t, out, "still built")
}

func TestRun_UnknownLayout_ErrorPerPage(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/views/bad.html", "---\nlayout: missing\n---\n<p>x</p>")
	writeSource(t, root, "src/views/good.html", "<p>ok</p>")

	errs := runAssembler(t, testConfig(root))
	require.Len(t, errs, 1)

	_, err := os.Stat(filepath.Join(root, "dist", "bad.html"))
	require.True(t, os.IsNotExist(err))
	require.FileExists(t, filepath.Join(root, "dist", "good.html"))
}

func TestRun_Rerun_IdenticalOutput(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/layouts/default.html", "{% body %}")
	writeSource(t, root, "src/materials/components/badge.html", "---\ntext: New\n---\n<span>{{text}}</span>")
	writeSource(t, root, "src/views/index.html", "{{> badge}}")

	cfg := testConfig(root)
	require.Empty(t, runAssembler(t, cfg))
	first := readOutput(t, filepath.Join(root, "dist", "index.html"))

	require.Empty(t, runAssembler(t, cfg))
	second := readOutput(t, filepath.Join(root, "dist", "index.html"))
	require.Equal(t, first, second)
}
