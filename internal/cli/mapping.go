package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/attribution"
)

var mappingFile string

type mappingResolver interface {
	Resolve(ctx context.Context) attribution.Resolution
}

type mappingImporter interface {
	ImportMapping(ctx context.Context, mapping domain.ChannelMapping) error
}

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Consulta ou substitui o mapeamento de contas por canal",
}

var mappingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Imprime o mapeamento vigente e a sua origem",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMappingShow(cmd.Context(), cmd.OutOrStdout(), getApp().Mapper)
	},
}

var mappingImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Substitui o mapeamento no banco a partir de um arquivo YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mappingFile == "" {
			return fmt.Errorf("--file é obrigatório")
		}
		return runMappingImport(cmd.Context(), cmd.OutOrStdout(), getApp().Settings, mappingFile)
	},
}

func init() {
	mappingImportCmd.Flags().StringVar(&mappingFile, "file", "", "Arquivo YAML com o mapeamento")

	mappingCmd.AddCommand(mappingShowCmd)
	mappingCmd.AddCommand(mappingImportCmd)
}

func runMappingShow(ctx context.Context, out io.Writer, mapper mappingResolver) error {
	resolution := mapper.Resolve(ctx)
	return printJSON(out, map[string]any{
		"source":  resolution.Source,
		"mapping": resolution.Mapping,
	})
}

func runMappingImport(ctx context.Context, out io.Writer, importer mappingImporter, path string) error {
	mapping, err := attribution.LoadMappingFile(path)
	if err != nil {
		return err
	}

	if err := importer.ImportMapping(ctx, mapping); err != nil {
		return err
	}

	logrus.WithField("file", path).Info("Mapeamento importado")
	return printJSON(out, mapping)
}
