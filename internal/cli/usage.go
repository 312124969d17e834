// Package cli provides help text and usage formatting for the tools-hub CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `tools-hub - AI writing and research tools backed by Gemini

USAGE
  tools-hub <command> [flags]

COMMANDS
  recommend     Recommend movies similar to your favorites
  fact-check    Rate a claim (and optional image) with web sources
  mock-data     Generate a JavaScript mock data generator
  humanize      Rewrite text to sound natural
  summarize     Summarize text
  geo-vision    Generate a photorealistic image of a location

FLAGS
  Backend & Models:
    --api-key <key>                        Gemini API key (default: $GEMINI_API_KEY, $NEXT_PUBLIC_GEMINI_API_KEY)
    -m, --model <name>                     Model variant to try, in order; repeatable (default: per tool)

  Retry & Fallback:
    --max-retries <int>                    Retries per model after the first attempt (default: 2)
    --initial-delay <duration>             Backoff before the first retry, doubled each retry (default: 1s)
    --max-delay <duration>                 Cap on a single backoff wait, 0 = no cap (default: 30s)
    --attempt-timeout <duration>           Timeout for a single attempt, 0 = none (default: 1m0s)

  Output:
    --metrics-file <path>                  Write Prometheus metrics to this file after the run
    -v, --verbose                          Log every attempt

  Configuration:
    --config <path>                        Path to additional config file
                                           (also read: ~/.config/tools-hub/config, ./.tools-hub, .env)

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

EXIT CODES
  0   Success              The tool produced a result
  1   Error                Invalid arguments, missing API key, configuration errors
  2   Exhausted            Every model variant failed
  3   InvalidResponse      A model answered but the answer was unusable
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Recommend movies
  tools-hub recommend --movie "Arrival" --movie "Her"

  # Fact-check a claim with an image, trying a specific model first
  tools-hub fact-check --text "This photo shows..." --image photo.jpg -m gemini-2.5-flash

  # Summarize a file as bullets
  tools-hub summarize --format bullets --length short < article.txt

  # Picture the spot at given coordinates
  tools-hub geo-vision --lat 46.5586 --lon 7.8351 --out lauterbrunnen.png

For more information, see: https://github.com/CodexForgeBR/tools-hub
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
