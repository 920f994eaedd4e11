package rules

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/printer"
	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/google/uuid"
)

const printfOutputStructName = "printfOutputStruct"

const printfOutputStructSource = `layout(binding = 0, std430) restrict buffer PrintfOutputStream {
	uint index;
	uint stream[];
} ` + printfOutputStructName + `;`

// JobParams records one extracted printf call site: its format string and
// the source text of each argument following it, in call order.
type JobParams struct {
	Format string
	Args   []string
}

// PrintfExtraction rewrites `printf("fmt", args...)` call statements into
// writes against a GPU-side ring buffer, the device-side half of a
// host-readable printf implementation. Extracted call sites accumulate in
// Jobs for the host side to consume after a Transform run.
type PrintfExtraction struct {
	*transform.Transformation
	Jobs []JobParams
}

// NewPrintfExtraction builds the rule. Jobs is cleared on every Transform
// run via the embedded Transformation's reset hook.
func NewPrintfExtraction() *PrintfExtraction {
	pe := &PrintfExtraction{Transformation: transform.NewTransformation()}
	pe.OnReset(func() { pe.Jobs = nil })
	pe.AddPhase(&printfExtractionPhase{owner: pe})
	return pe
}

type printfExtractionPhase struct {
	transform.BasePhase
	owner *PrintfExtraction
}

func (p *printfExtractionPhase) Run(ctx *transform.Context) error {
	injected := false
	for _, n := range ctx.Root().NodesOfKind(ast.KindFunctionCallExpression) {
		call := n.(*ast.FunctionCallExpression)
		if call.Callee.Name() != "printf" || len(call.Args) == 0 {
			continue
		}
		lit, ok := call.Args[0].(*ast.LiteralExpression)
		if !ok || lit.Type != ast.LiteralString {
			continue
		}
		stmt, ok := call.Parent().(*ast.ExpressionStatement)
		if !ok {
			continue
		}

		if !injected && len(ctx.Root().ExternalDeclarationsNamed(printfOutputStructName)) == 0 {
			if err := ctx.InjectExternalDeclaration(printfOutputStructSource, transform.BeforeDeclarations); err != nil {
				return err
			}
			injected = true
		}

		argTexts := make([]string, 0, len(call.Args)-1)
		for _, a := range call.Args[1:] {
			argTexts = append(argTexts, printer.PrintExpression(a))
		}
		p.owner.Jobs = append(p.owner.Jobs, JobParams{Format: lit.Text, Args: argTexts})

		blockSrc, err := p.buildBlockSource(lit.Text, argTexts)
		if err != nil {
			return err
		}
		node, fragRoot, err := astbuild.BuildFragment(astbuild.ShapeCompoundStatement, blockSrc)
		if err != nil {
			return err
		}
		_ = fragRoot
		clonedBlock := node.CloneInto(ctx.Root()).(*ast.CompoundStatement)
		if err := ast.ReplaceBy(stmt, clonedBlock); err != nil {
			return err
		}
	}
	return nil
}

// buildBlockSource renders the replacement `{ ... }` block: it reserves
// one ring-buffer slot per format id plus one per argument, then writes
// each slot with atomicAdd-allocated indices.
func (p *printfExtractionPhase) buildBlockSource(format string, argTexts []string) (string, error) {
	slots := len(argTexts) + 1
	idxVar := "printfIdx_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	var b strings.Builder
	fmt.Fprintf(&b, "{\n")
	fmt.Fprintf(&b, "uint %s = atomicAdd(%s.index, %du);\n", idxVar, printfOutputStructName, slots)
	fmt.Fprintf(&b, "%s.stream[%s] = %du;\n", printfOutputStructName, idxVar, formatID(format))
	for i, arg := range argTexts {
		fmt.Fprintf(&b, "%s.stream[%s + %du] = floatBitsToUint(%s);\n", printfOutputStructName, idxVar, i+1, arg)
	}
	fmt.Fprintf(&b, "}")
	return b.String(), nil
}

func formatID(format string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(format))
	return h.Sum32()
}
