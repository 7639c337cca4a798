// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
)

const usageText = `
asmx - multi-target assembly extraction orchestrator

USAGE:
  asmx <command> <function> [options]

COMMANDS:
  asm-arm64 <function>      Extract assembly for the arm64 target
                            (aarch64-unknown-linux-musl)
  asm-x86-64 <function>     Extract assembly for the x86-64 target
                            (x86_64-unknown-linux-musl)
  asm-all <function>        Extract for arm64, then x86-64, with a
                            separator line between the two blocks
  list-targets              List known target aliases and their triples

TOOLCHAIN OPTIONS:
  -d, --crate-dir string    Directory of the crate to inspect (default: current)
      --cargo string        Cargo binary to invoke (default: "cargo")
  -T, --timeout int         Per-invocation timeout in seconds, 0=none (default: 0)
  -c, --config string       Path to asmx.yaml manifest (optional)

OUTPUT OPTIONS:
      --raw                 Plain status output, no terminal styling
  -v, --verbose             Verbose logging to stderr

INFO:
      --version             Print version information and exit
  -h, --help                Show this help message

ENVIRONMENT:
  ASMX_CARGO, ASMX_CRATE_DIR, ASMX_TIMEOUT, ASMX_RAW, ASMX_LOG_LEVEL

PREREQUISITES:
  cargo install cargo-show-asm
  rustup target add aarch64-unknown-linux-musl
  rustup target add x86_64-unknown-linux-musl

EXAMPLES:
  Compare one function across both targets:
    asmx asm-all relaxed_atomic_fetch_or

  Single target, explicit crate directory:
    asmx asm-arm64 simple_add_ten --crate-dir ./chapter_7_asm
`

// PrintUsage writes the command listing and flag reference to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
