package hpastar

import (
	"strconv"

	"github.com/katalvlaran/gridpath/geom"
)

// pointKey renders a grid position as the stable string vertex ID the
// abstract graph indexes entrances by.
func pointKey(p geom.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}
