// Package gen generates static accessor tables for struct types, so
// records resolve properties without per-access reflection. The output
// file belongs in the package defining the structs and registers its
// tables from init.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/naturalis-io/pathwalk/record"
)

// prop is one generated table entry: the property's canonical name, the
// aliases it also answers to, and the field it reads and writes.
type prop struct {
	Name    string
	Aliases []string
	Field   string
	Type    string
}

// Source generates the accessor-table source file for the named struct
// types of the package at pattern. The result is gofmt-ed and meant to
// be written next to the struct definitions.
func Source(pattern string, typeNames []string, tagKey string) ([]byte, error) {
	if tagKey == "" {
		tagKey = record.DefaultTag
	}
	loader := NewLoader()
	pkg, err := loader.Load(pattern)
	if err != nil {
		return nil, err
	}

	imports := map[string]string{}
	qualify := func(p *types.Package) string {
		if p == nil || p == pkg.Types {
			return ""
		}
		imports[p.Path()] = p.Name()
		return p.Name()
	}

	buf := &bytes.Buffer{}
	body := &bytes.Buffer{}
	for _, tn := range typeNames {
		st, err := loader.FindStruct(pkg, tn)
		if err != nil {
			return nil, err
		}
		props := structProps(st, tagKey, qualify)
		if len(props) == 0 {
			return nil, fmt.Errorf("type %q has no accessible properties", tn)
		}
		emitTable(body, tn, props)
	}

	emitHeader(buf, pkg.Types.Name(), imports)
	buf.Write(body.Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// structProps applies the same name resolution the reflection accessor
// uses: tag name first, falling back to the lower-camel field name, with
// the field name itself as an alias. A tag of "-" hides the field.
func structProps(st *types.Struct, tagKey string, qualify types.Qualifier) []prop {
	var out []prop
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		tag := tagName(reflect.StructTag(st.Tag(i)).Get(tagKey))
		if tag == "-" {
			continue
		}
		name := tag
		if name == "" {
			name = lowerCamel(f.Name())
		}
		aliases := []string{}
		for _, a := range []string{f.Name(), lowerCamel(f.Name())} {
			if a != name {
				aliases = append(aliases, a)
			}
		}
		sort.Strings(aliases)
		out = append(out, prop{
			Name:    name,
			Aliases: aliases,
			Field:   f.Name(),
			Type:    types.TypeString(f.Type(), qualify),
		})
	}
	return out
}

func emitHeader(buf *bytes.Buffer, pkgName string, imports map[string]string) {
	fmt.Fprintf(buf, "// Code generated by pw gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", pkgName)
	fmt.Fprintf(buf, "import (\n")
	fmt.Fprintf(buf, "\t%q\n", "fmt")
	fmt.Fprintf(buf, "\t%q\n\n", "reflect")
	fmt.Fprintf(buf, "\t%q\n", "github.com/naturalis-io/pathwalk/record")
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	fmt.Fprintf(buf, ")\n\n")
}

func emitTable(buf *bytes.Buffer, typeName string, props []prop) {
	fmt.Fprintf(buf, "func init() {\n")
	fmt.Fprintf(buf, "\tprops := map[string]record.Prop{\n")
	for _, p := range props {
		emitProp(buf, typeName, p)
	}
	fmt.Fprintf(buf, "\t}\n")
	for _, p := range props {
		for _, a := range p.Aliases {
			fmt.Fprintf(buf, "\tprops[%q] = props[%q]\n", a, p.Name)
		}
	}
	fmt.Fprintf(buf, "\trecord.Register(reflect.TypeOf(%s{}), record.Table{Props: props})\n", typeName)
	fmt.Fprintf(buf, "}\n\n")
}

func emitProp(buf *bytes.Buffer, typeName string, p prop) {
	fmt.Fprintf(buf, "\t\t%q: {\n", p.Name)
	fmt.Fprintf(buf, "\t\t\tName: %q,\n", p.Name)
	fmt.Fprintf(buf, "\t\t\tType: reflect.TypeOf((*%s)(nil)).Elem(),\n", p.Type)
	fmt.Fprintf(buf, "\t\t\tGet: func(rec any) (any, error) {\n")
	fmt.Fprintf(buf, "\t\t\t\tswitch r := rec.(type) {\n")
	fmt.Fprintf(buf, "\t\t\t\tcase *%s:\n\t\t\t\t\treturn r.%s, nil\n", typeName, p.Field)
	fmt.Fprintf(buf, "\t\t\t\tcase %s:\n\t\t\t\t\treturn r.%s, nil\n", typeName, p.Field)
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t\treturn nil, fmt.Errorf(\"record: %%T is not a %s\", rec)\n", typeName)
	fmt.Fprintf(buf, "\t\t\t},\n")
	fmt.Fprintf(buf, "\t\t\tSet: func(rec, value any) error {\n")
	fmt.Fprintf(buf, "\t\t\t\tr, ok := rec.(*%s)\n", typeName)
	fmt.Fprintf(buf, "\t\t\t\tif !ok {\n")
	fmt.Fprintf(buf, "\t\t\t\t\treturn fmt.Errorf(\"record: need *%s, got %%T\", rec)\n", typeName)
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t\tif value == nil {\n")
	fmt.Fprintf(buf, "\t\t\t\t\tvar zero %s\n", p.Type)
	fmt.Fprintf(buf, "\t\t\t\t\tr.%s = zero\n", p.Field)
	fmt.Fprintf(buf, "\t\t\t\t\treturn nil\n")
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t\tv, ok := value.(%s)\n", p.Type)
	fmt.Fprintf(buf, "\t\t\t\tif !ok {\n")
	fmt.Fprintf(buf, "\t\t\t\t\treturn fmt.Errorf(\"record: cannot assign %%T to property %%q (%s) of %s\", value, %q)\n",
		p.Type, typeName, p.Name)
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t\tr.%s = v\n", p.Field)
	fmt.Fprintf(buf, "\t\t\t\treturn nil\n")
	fmt.Fprintf(buf, "\t\t\t},\n")
	fmt.Fprintf(buf, "\t\t},\n")
}

// tagName extracts the name part of a tag value, e.g. "name,opt" → "name".
func tagName(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}
	return tag
}

func lowerCamel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
