// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"glutils.org/gl"
)

// Info is what the driver reports about the current context.
type Info struct {
	Vendor     string
	Renderer   string
	Version    string
	GLSL       string
	Context    int
	Profile    string
	Limits     []Limit
	Extensions []string
}

type Limit struct {
	Name  string
	Value int
}

var limits = []struct {
	name  string
	pname gl.Enum
}{
	{"max texture size", gl.MAX_TEXTURE_SIZE},
	{"max 3D texture size", gl.MAX_3D_TEXTURE_SIZE},
	{"max combined texture units", gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS},
	{"max vertex attributes", gl.MAX_VERTEX_ATTRIBS},
	{"max uniform block size", gl.MAX_UNIFORM_BLOCK_SIZE},
	{"max uniform buffer bindings", gl.MAX_UNIFORM_BUFFER_BINDINGS},
	{"max storage buffer bindings", gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS},
	{"max label length", gl.MAX_LABEL_LENGTH},
}

func queryInfo(f gl.Functions) (Info, error) {
	ver, err := gl.ContextVersion(f)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		Vendor:   f.GetString(gl.VENDOR),
		Renderer: f.GetString(gl.RENDERER),
		Version:  f.GetString(gl.VERSION),
		GLSL:     f.GetString(gl.SHADING_LANGUAGE_VERSION),
		Context:  ver,
		Profile:  "compatibility",
	}
	if f.GetInteger(gl.CONTEXT_PROFILE_MASK)&gl.CONTEXT_CORE_PROFILE_BIT != 0 {
		info.Profile = "core"
	}
	for _, l := range limits {
		info.Limits = append(info.Limits, Limit{Name: l.name, Value: f.GetInteger(l.pname)})
	}
	info.Extensions = strings.Fields(f.GetString(gl.EXTENSIONS))
	sort.Strings(info.Extensions)
	if err := gl.CheckError(f, "query context"); err != nil {
		return Info{}, err
	}
	return info, nil
}

func (i Info) write(w io.Writer, listExtensions bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.Append([]string{"vendor", i.Vendor})
	table.Append([]string{"renderer", i.Renderer})
	table.Append([]string{"version", i.Version})
	table.Append([]string{"context", fmt.Sprintf("%d.%d %s", i.Context/10, i.Context%10, i.Profile)})
	table.Append([]string{"shading language", i.GLSL})
	for _, l := range i.Limits {
		table.Append([]string{l.Name, strconv.Itoa(l.Value)})
	}
	table.Append([]string{"extensions", strconv.Itoa(len(i.Extensions))})
	if listExtensions {
		for _, ext := range i.Extensions {
			table.Append([]string{"", ext})
		}
	}
	table.Render()
}

func writeResults(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Result", "Detail"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{r.Name, r.Status(), r.Detail()})
	}
	table.Render()
}
