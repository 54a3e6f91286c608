package markup

import "errors"

var errNoRoot = errors.New("document has no root element")
