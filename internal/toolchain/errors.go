package toolchain

import "errors"

var ErrToolchain = errors.New("toolchain error")
