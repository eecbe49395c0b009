// Package treefmt renders attributed trees for terminal output. It consumes
// the rendering contract from rec (root, ordered children, attribute per
// node) and knows nothing about fixpoints or schemes, so anything a fold
// annotates can be printed with it.
package treefmt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/fatih/color"

	"github.com/gitter-badger/matryoshka/rec"
)

// branch glyphs
const (
	branchMid  = "├── "
	branchLast = "└── "
	pipeIndent = "│   "
	lastIndent = "    "
)

var (
	titleStyle  = color.New(color.FgCyan, color.Bold)
	countStyle  = color.New(color.FgWhite)
	branchStyle = color.New(color.FgHiBlue)
	nodeStyle   = color.New(color.FgWhite, color.Bold)
	attrStyle   = color.New(color.FgYellow)
)

const treeTemplate = `{{header .Title .Count }}
{{range .Lines }}{{line .Branch .Label .Attr }}
{{end }}`

type nodeLine struct {
	Branch string
	Label  string
	Attr   string
}

type treeData struct {
	Title string
	Count int
	Lines []nodeLine
}

// Format renders tree as an indented list with box-drawing branches, the
// root first and children under their parent. label names a node; the node's
// attribute is printed next to it.
func Format[N, V any](tree rec.Tree[N, V], label func(N) string, title string) string {
	var lines []nodeLine
	var walk func(n N, branch, childPrefix string)
	walk = func(n N, branch, childPrefix string) {
		lines = append(lines, nodeLine{
			Branch: branch,
			Label:  label(n),
			Attr:   fmt.Sprintf("%v", tree.Attr(n)),
		})
		kids := tree.Children(n)
		for i, c := range kids {
			if i == len(kids)-1 {
				walk(c, childPrefix+branchLast, childPrefix+lastIndent)
			} else {
				walk(c, childPrefix+branchMid, childPrefix+pipeIndent)
			}
		}
	}
	walk(tree.Root, "", "")

	data := treeData{Title: title, Count: len(lines), Lines: lines}

	funcMap := template.FuncMap{
		"header": header,
		"line":   line,
	}
	tmpl := template.Must(template.New("tree").Funcs(funcMap).Parse(treeTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting tree: %v", err)
	}
	return buf.String()
}

// template helpers

func header(title string, count int) string {
	noun := "nodes"
	if count == 1 {
		noun = "node"
	}
	return titleStyle.Sprintf("%s ", title) + countStyle.Sprintf("(%d %s)", count, noun)
}

func line(branch, label, attr string) string {
	s := branchStyle.Sprint(branch) + nodeStyle.Sprint(label)
	if attr != "" {
		s += attrStyle.Sprintf(" = %s", attr)
	}
	return s
}
