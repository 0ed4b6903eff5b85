package prom

import (
	"gfx.cafe/open/gotoprom"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	gotoprom.MustInit(&BufPool, "pktio_bufpool", make(prometheus.Labels))
}

type BufPoolLabels struct {
	Pool string `label:"pool"`
}

var BufPool struct {
	Borrows  func(BufPoolLabels) prometheus.Counter `name:"borrows" help:"windows borrowed"`
	Recycles func(BufPoolLabels) prometheus.Counter `name:"recycles" help:"windows recycled"`
	InUse    func(BufPoolLabels) prometheus.Gauge   `name:"in_use" help:"windows currently on loan"`
}
