package id

import (
	"fmt"
	"net"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/cespare/xxhash"
)

type Unique = int64

var (
	MachineID = getMachineID()
	generator = new(idGenerator)
)

type idGenerator struct {
	node *snowflake.Node
	once sync.Once
}

func (g *idGenerator) nextID() int64 {
	g.once.Do(func() {
		node, err := snowflake.NewNode(MachineID)
		if err != nil {
			panic(fmt.Sprintf("failed to initialize snowflake node: %s", err))
		}
		g.node = node
	})
	return g.node.Generate().Int64()
}

// New returns an id that increases with time, used to tie together the log
// lines of one cycle.
func New() Unique {
	return generator.nextID()
}

func getMachineID() int64 {
	interfaces, err := net.Interfaces()
	if err != nil {
		return 1
	}

	for _, i := range interfaces {
		if (i.Flags&net.FlagUp) != 0 && len(i.HardwareAddr) > 0 {
			return int64(xxhash.Sum64(i.HardwareAddr) % 1024)
		}
	}

	return 1 // fallback
}
