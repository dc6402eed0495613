package out

import (
	"context"
	"image"
	"image/png"
	"io"

	reportout "symptrack/internal/modules/report/port/out"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/tx"
)

type PNGWriter struct{}

func NewPNGWriter() reportout.ImageWriter {
	return &PNGWriter{}
}

func (w *PNGWriter) WritePNG(ctx context.Context, path string, img image.Image) error {
	return tx.WriteFile(ctx, path, func(out io.Writer) error {
		return apperrors.WrapIO("encode image", path, png.Encode(out, img))
	})
}
