/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitess.io/collate/go/locale"
	"vitess.io/collate/go/log"
	"vitess.io/collate/go/stats/prometheusbackend"
	"vitess.io/collate/go/utils"
)

var (
	// FS is the filesystem input files and the config file are read from.
	FS = afero.NewOsFs()

	// Stdin is read when a command is given no input files.
	Stdin io.Reader = os.Stdin

	rootArgs = struct {
		Locale      string
		ConfigFile  string
		DumpMetrics bool
	}{}

	rootConfig   *viper.Viper
	rootRegistry *locale.Registry
	rootThread   *locale.Thread

	metricsOnce     sync.Once
	metricsRegistry *prometheus.Registry

	// Root is the main entrypoint to collsort.
	Root = &cobra.Command{
		Use:   "collsort",
		Short: "collsort sorts, compares and explains text under locale collation rules.",
		Long:  `collsort sorts, compares and explains text under locale collation rules.

The locale is taken from --locale, then COLLSORT_LOCALE, then the "locale" key
of the config file, and finally from LC_ALL, LC_COLLATE and LANG.`,
		SilenceUsage:       true,
		PersistentPreRunE:  rootPreRun,
		PersistentPostRunE: rootPostRun,
	}
)

func rootPreRun(cmd *cobra.Command, args []string) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}

	v := viper.New()
	v.SetFs(FS)
	v.SetEnvPrefix("COLLSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if rootArgs.ConfigFile != "" {
		v.SetConfigFile(rootArgs.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", rootArgs.ConfigFile, err)
		}
	}
	rootConfig = v

	rootRegistry = locale.NewRegistry()
	name, err := rootRegistry.Set(locale.LC_ALL, v.GetString("locale"))
	if err != nil {
		return err
	}
	rootThread = rootRegistry.NewThread()
	log.DebugS("locale selected", "locale", name, "collation", rootThread.Collation().Name())

	metricsOnce.Do(func() {
		metricsRegistry = prometheus.NewRegistry()
		prometheusbackend.Init("collsort", metricsRegistry)
	})
	return nil
}

func rootPostRun(cmd *cobra.Command, args []string) error {
	defer log.Flush()
	if !rootArgs.DumpMetrics {
		return nil
	}
	return dumpMetrics(cmd.ErrOrStderr())
}

func dumpMetrics(w io.Writer) error {
	families, err := metricsRegistry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	fs := Root.PersistentFlags()
	utils.SetFlagStringVar(fs, &rootArgs.Locale, "locale", "", "Locale to collate with (e.g. en_US.UTF-8, ar_EG@interleaved, C). Empty means the environment.")
	utils.SetFlagStringVar(fs, &rootArgs.ConfigFile, "config", "", "Path to a config file (yaml, json or toml) holding defaults for any flag.")
	utils.SetFlagBoolVar(fs, &rootArgs.DumpMetrics, "dump-metrics", false, "Write the collected metrics in the Prometheus text format to stderr on exit.")
	log.RegisterFlags(fs)
}
