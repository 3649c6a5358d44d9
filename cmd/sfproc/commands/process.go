package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/sfproc/cmd/sfproc/handlers"
	"github.com/imamik/sfproc/internal/config"
)

// Process returns the process command.
//
// The process command lists the bucket, selects the settlement files and
// copies each one to its backup key.
func Process() *cobra.Command {
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Copy settlement files to their backup keys",
		Long: `Process lists every object under the bucket prefix and copies each
settlement file to a backup key in the same bucket.

A key is a settlement file when it:
  - ends in a recognized extension (e.g. .csv, .t112)
  - contains a tenant token (tn-<id>)
  - is not under an excluded directory (archive/, backup/)
  - matches --regex, when given

The backup key inserts --suffix before the extension. The copy replaces the
object metadata with SourceKey, BackupKey, OrgId, Endpoint, Streamable and
ParentCorrelationId. Streamable formats (BASEII, T112, T120, T464, T470) are
encrypted with --kms-key and skipped when no key is given.

Per-object failures are logged and skipped; only a listing failure fails
the run.

Example:
  sfproc process -e cib-001 -b settlements -p prod/ --suffix=-bak -k alias/settlements
  sfproc process -e cib-001 -b settlements --pretend -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Process(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Endpoint, "endpoint", "e", "", "Endpoint/CIB related to the files (required)")
	f.StringVarP(&cfg.Bucket, "bucket", "b", "", "S3 bucket to look up (required)")
	f.StringVarP(&cfg.Prefix, "prefix", "p", "", "Key prefix to list")
	f.StringVarP(&cfg.Suffix, "suffix", "s", "", "Suffix inserted before the extension of backup keys")
	f.StringVarP(&cfg.Regex, "regex", "r", "", "Additional regular expression keys must match")
	f.StringVarP(&cfg.KMSKey, "kms-key", "k", "", "KMS key ID or ARN used to encrypt streamable files")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	f.BoolVar(&cfg.Pretend, "pretend", false, "Compute every copy without executing it")
	f.Int32Var(&cfg.PageSize, "page-size", cfg.PageSize, "Keys per listing request (env: "+config.EnvPageSize+")")
	f.StringVar(&cfg.Store.Region, "region", cfg.Store.Region, "AWS region (env: "+config.EnvRegion+")")
	f.StringVar(&cfg.Store.URL, "s3-endpoint", "", "Custom S3 endpoint URL for S3-compatible stores")
	f.BoolVar(&cfg.Store.PathStyle, "path-style", false, "Use path-style S3 addressing")
	f.StringVar(&cfg.PatternsFile, "patterns", "", "YAML file overriding the key classification rules")
	f.StringVar(&cfg.ReportDir, "report-dir", "", "Directory receiving summary.yaml and metrics.prom")

	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}
