// Render command runs the pipeline and prints JSON-LD output.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pressmark/schemald/internal/render"
)

var (
	flagRenderPost   int64
	flagRenderGlobal bool
)

var renderCmd = &cobra.Command{
	Use:   "render [key...]",
	Short: "Render JSON-LD for a post or the site",
	Long: `Render runs the schema pipeline and prints script blocks for the
page head, or raw JSON objects with --json.

With --post and no keys, every applicable configured schema renders with
conflict arbitration, exactly as the head fragment would. With keys, only
those schemas render. With --global, keys render in site scope.

Example:
  schemald render --post 7
  schemald render --post 7 article faq
  schemald render --global website`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagRenderGlobal == (flagRenderPost > 0) {
			fmt.Fprintln(os.Stderr, "render: exactly one of --post or --global is required")
			os.Exit(exitUserError)
		}
		if flagRenderGlobal && len(args) == 0 {
			fmt.Fprintln(os.Stderr, "render: --global requires at least one key")
			os.Exit(exitUserError)
		}

		log, err := newLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(exitSysError)
		}
		defer log.Sync()

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		pipeline := newPipeline(store, log)

		objs, err := collectObjects(pipeline, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(exitSysError)
		}

		out, err := formatObjects(objs)
		if err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(exitSysError)
		}

		fmt.Print(out)
		return nil
	},
}

// collectObjects gathers the JSON-LD objects for the requested scope.
func collectObjects(pipeline *render.Pipeline, keys []string) ([]map[string]any, error) {
	if flagRenderGlobal {
		var objs []map[string]any
		for _, key := range keys {
			obj, err := pipeline.BuildGlobal(key)
			if err != nil {
				return nil, err
			}
			if obj != nil {
				objs = append(objs, obj)
			}
		}
		return objs, nil
	}

	if len(keys) == 0 {
		return pipeline.HeadObjects(flagRenderPost)
	}

	var objs []map[string]any
	for _, key := range keys {
		obj, err := pipeline.BuildForPost(key, flagRenderPost)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			objs = append(objs, obj)
		}
	}
	return objs, nil
}

// formatObjects serializes for stdout: script blocks by default, a JSON
// array with --json.
func formatObjects(objs []map[string]any) (string, error) {
	if !flagJSON {
		return render.ScriptTags(objs)
	}
	out, err := json.MarshalIndent(objs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func init() {
	renderCmd.Flags().Int64Var(&flagRenderPost, "post", 0, "post ID to render against")
	renderCmd.Flags().BoolVar(&flagRenderGlobal, "global", false, "render in site scope")
}
