package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/facetpager/facetpager/pkg/dataset"
	pio "github.com/facetpager/facetpager/pkg/io"
	"github.com/facetpager/facetpager/pkg/observability"
)

// Load reads the input file into a dataset. When opts.Dataset is set the
// load stage is skipped and the pre-loaded dataset is returned as-is.
func Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Dataset != nil {
		return opts.Dataset, nil
	}

	observability.Pipeline().OnLoadStart(ctx, opts.Data, opts.DataFormat)
	start := time.Now()

	var d *dataset.Dataset
	var err error
	switch opts.DataFormat {
	case DataFormatCSV:
		d, err = pio.ImportCSV(opts.Data)
	case DataFormatJSON:
		d, err = pio.ImportJSON(opts.Data)
	default:
		err = fmt.Errorf("unsupported data format: %s", opts.DataFormat)
	}

	rows := 0
	if d != nil {
		rows = d.NumRows()
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Data, rows, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("loaded dataset",
		"path", opts.Data,
		"rows", d.NumRows(),
		"columns", d.NumColumns())
	return d, nil
}
