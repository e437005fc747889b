package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quill/internal/adt"
	"quill/internal/db"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/hir"
	"quill/internal/infer"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the built-in sample snapshot",
	Long: `Run the expression validator over the built-in sample snapshot and
report structural diagnostics. Lowered snapshots normally arrive from the
surrounding front end; this command exercises the full pipeline end to end.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("config", "quill.toml", "path to the configuration file")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "enable the persistent definition cache")
	checkCmd.Flags().Bool("no-context", false, "omit source context lines from pretty output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	diskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return err
	}
	noContext, err := cmd.Flags().GetBool("no-context")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	cfg, err := driver.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if jobs > 0 {
		cfg.Jobs = jobs
	}
	if maxDiagnostics > 0 {
		cfg.MaxDiagnostics = maxDiagnostics
	}
	if diskCache {
		cfg.Cache = true
	}

	names := source.NewInterner()
	tys := types.NewInterner()
	d := db.New(names, tys)
	if err := driver.AttachCache(d, cfg); err != nil {
		return err
	}
	fs := buildSampleSnapshot(d, names, tys)

	bag, err := driver.ValidateAll(cmd.Context(), d, cfg)
	if err != nil {
		return err
	}

	useColor := colorMode != "off"
	if colorMode == "on" {
		color.NoColor = false
	}

	switch strings.ToLower(format) {
	case "pretty":
		diagfmt.Pretty(cmd.OutOrStdout(), bag, fs, diagfmt.PrettyOpts{
			Color:   useColor,
			Context: !noContext,
		})
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

const sampleSource = `struct Point {
    x: int,
    y: int,
}

fn origin() -> Point {
    Point { x: 0 }
}

fn flip(b: bool) -> bool {
    match b {
        true => false,
    }
}
`

// spanOf locates the first occurrence of needle at or after from.
func spanOf(file source.FileID, src, needle string, from int) source.Span {
	idx := strings.Index(src[from:], needle)
	if idx < 0 {
		panic(fmt.Sprintf("sample snapshot out of sync: %q not found", needle))
	}
	start := from + idx
	return source.Span{
		File:  file,
		Start: uint32(start),              //nolint:gosec // sample is tiny
		End:   uint32(start + len(needle)), //nolint:gosec // sample is tiny
	}
}

// buildSampleSnapshot registers the sample definitions and bodies the way
// the surrounding front end would after lowering.
func buildSampleSnapshot(d *db.DB, names *source.Interner, tys *types.Interner) *source.FileSet {
	fs := source.NewFileSet()
	file := fs.Add("sample/geometry.ql", []byte(sampleSource))
	src := sampleSource

	field := func(name, needle string) syntax.RecordFieldDef {
		sp := spanOf(file, src, needle, 0)
		return syntax.RecordFieldDef{
			Name: &syntax.Ident{Text: names.Intern(name), Span: source.Span{File: file, Start: sp.Start, End: sp.Start + 1}},
			Type: &syntax.TypeSyntax{Text: names.Intern("int"), Span: source.Span{File: file, Start: sp.Start + 3, End: sp.End}},
			Span: sp,
		}
	}

	structStart := strings.Index(src, "struct Point")
	fieldListSpan := source.Span{
		File:  file,
		Start: spanOf(file, src, "{", structStart).Start,
		End:   spanOf(file, src, "}", structStart).End,
	}
	point := d.AddStruct(&syntax.StructDecl{
		Name: spanIdent(names, file, src, "Point", 0),
		Fields: syntax.FieldList{
			Kind:   syntax.FieldsRecord,
			Record: []syntax.RecordFieldDef{field("x", "x: int"), field("y", "y: int")},
			Span:   fieldListSpan,
		},
		Span: source.Span{File: file, Start: uint32(structStart), End: fieldListSpan.End}, //nolint:gosec // sample is tiny
	})

	// fn origin: `Point { x: 0 }` omits y.
	{
		b := hir.NewBuilder()
		res := infer.NewResult()

		zero := b.Literal(syntax.ExprNode{Span: spanOf(file, src, "0", 0)})
		res.RecordExprType(zero, tys.Builtins().Int)

		litSpan := spanOf(file, src, "Point { x: 0 }", 0)
		lit := b.RecordLit(syntax.RecordLitNode{
			Span:      litSpan,
			FieldList: syntax.NodePtr{Kind: syntax.NodeRecordFieldListExpr, Span: spanOf(file, src, "{ x: 0 }", 0)},
		}, []hir.RecordLitField{{Name: adt.NewName(names.Intern("x")), Expr: zero}}, hir.NoExprID)
		res.RecordExprVariant(lit, adt.StructVariant(point))

		body, srcMap := b.Finish()
		d.AddFunction(&db.Function{Name: "origin", Body: body, SrcMap: srcMap, Infer: res})
	}

	// fn flip: the match covers true but not false.
	{
		b := hir.NewBuilder()
		res := infer.NewResult()

		matchStart := strings.Index(src, "match b")
		scrutSpan := spanOf(file, src, "b", matchStart+6)
		scrut := b.Path(syntax.ExprNode{Span: scrutSpan})
		res.RecordExprType(scrut, tys.Builtins().Bool)

		pat := b.BoolPat(syntax.PatternNode{Span: spanOf(file, src, "true", matchStart)}, true)
		res.RecordPatType(pat, tys.Builtins().Bool)
		armExpr := b.Literal(syntax.ExprNode{Span: spanOf(file, src, "false", matchStart)})
		res.RecordExprType(armExpr, tys.Builtins().Bool)

		armListSpan := source.Span{
			File:  file,
			Start: spanOf(file, src, "{", matchStart).Start,
			End:   spanOf(file, src, "}", matchStart).End,
		}
		b.Match(syntax.MatchExprNode{
			Span:      source.Span{File: file, Start: uint32(matchStart), End: armListSpan.End}, //nolint:gosec // sample is tiny
			Scrutinee: syntax.NodePtr{Kind: syntax.NodeExpr, Span: scrutSpan},
			ArmList:   syntax.NodePtr{Kind: syntax.NodeMatchArmList, Span: armListSpan},
		}, scrut, []hir.MatchArm{{Pat: pat, Expr: armExpr}})

		body, srcMap := b.Finish()
		d.AddFunction(&db.Function{Name: "flip", Body: body, SrcMap: srcMap, Infer: res})
	}

	return fs
}

func spanIdent(names *source.Interner, file source.FileID, src, text string, from int) *syntax.Ident {
	return &syntax.Ident{Text: names.Intern(text), Span: spanOf(file, src, text, from)}
}
