// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// ContextVersion returns the version of the context that owns f, encoded
// as major*10+minor.
func ContextVersion(f Functions) (int, error) {
	if major := f.GetInteger(MAJOR_VERSION); major > 0 {
		return major*10 + f.GetInteger(MINOR_VERSION), nil
	}
	ver, err := ParseGLVersion(f.GetString(VERSION))
	if err != nil {
		return 0, err
	}
	return ver[0]*10 + ver[1], nil
}
