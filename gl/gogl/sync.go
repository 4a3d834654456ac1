// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) FenceSync(condition, flags glu.Enum) glu.Sync {
	return glu.Sync{V: gl.FenceSync(uint32(condition), uint32(flags))}
}

func (f *Functions) DeleteSync(s glu.Sync) {
	gl.DeleteSync(s.V)
}

func (f *Functions) IsSync(s glu.Sync) bool {
	return gl.IsSync(s.V)
}

func (f *Functions) ClientWaitSync(s glu.Sync, flags glu.Enum, timeout uint64) glu.Enum {
	return glu.Enum(gl.ClientWaitSync(s.V, uint32(flags), timeout))
}

func (f *Functions) WaitSync(s glu.Sync, flags glu.Enum, timeout uint64) {
	gl.WaitSync(s.V, uint32(flags), timeout)
}
