package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gfx.cafe/gfx/pktio/lib/packet"
	"gfx.cafe/gfx/pktio/lib/packet/bufpool"
)

var rootCmd = &cobra.Command{
	Use:   "pktdump [file]",
	Short: "dump a byte stream through pooled packet windows",
	Long: `
pktdump reads a file (or stdin) into pooled packet windows and prints the
decoded UTF-8 lines, or a hex view with --hex. It exists to exercise the
packet reader end to end and to eyeball pool behavior with --leak-check.
`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

var flags struct {
	capacity  int
	limit     int
	hexdump   bool
	leakCheck bool
}

func addFlags(f *pflag.FlagSet) {
	f.IntVar(&flags.capacity, "capacity", 4096, "window capacity in bytes")
	f.IntVar(&flags.limit, "limit", 4096, "line length limit in characters")
	f.BoolVar(&flags.hexdump, "hex", false, "hex view instead of line decoding")
	f.BoolVar(&flags.leakCheck, "leak-check", false, "report windows never recycled")
}

func init() {
	addFlags(rootCmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	input := os.Stdin
	if len(args) == 1 {
		input, err = os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = input.Close()
		}()
	}

	pool := bufpool.NewTracked(bufpool.NewFixed(flags.capacity), logger)

	chunk := make([]byte, flags.capacity)
	var offset int64
	for {
		n, rerr := io.ReadFull(input, chunk)
		if n > 0 {
			w := pool.Borrow()
			w.WriteBytes(chunk[:n])
			reader := packet.NewReader(pool, w)
			if flags.hexdump {
				dumpHex(reader, offset)
			} else if derr := dumpLines(reader); derr != nil {
				logger.Error("line decode failed", zap.Error(derr))
				reader.Release()
			}
			offset += int64(n)
		}
		if rerr != nil {
			break
		}
	}

	if flags.leakCheck {
		if leaked := pool.ReportLeaks(); leaked > 0 {
			return fmt.Errorf("%d windows leaked", leaked)
		}
	}
	return nil
}

func dumpLines(reader *packet.Reader) error {
	var sb strings.Builder
	for {
		result, err := reader.ReadLine(&sb, flags.limit)
		if err != nil {
			return err
		}
		switch result {
		case packet.LineEOF:
			return nil
		case packet.LinePartial:
			fmt.Printf("%s\\\n", sb.String())
		case packet.LineComplete:
			fmt.Println(sb.String())
		}
		sb.Reset()
	}
}

func dumpHex(reader *packet.Reader, offset int64) {
	row := make([]byte, 16)
	for {
		n := reader.ReadAvailable(row)
		if n <= 0 {
			return
		}
		fmt.Printf("%08x  %s\n", offset, hex.EncodeToString(row[:n]))
		offset += int64(n)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
