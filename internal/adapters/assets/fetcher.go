package assets

import (
	"context"
	"fmt"
	"os"

	"github.com/Rimuy-Amaya/Catkuro/internal/platform/httpclient"
)

// EnsureFont garantiza que el TTF del reporte exista en fontPath.
// Si ya está, no hace nada. Si falta y hay una URL configurada, lo baja
// una sola vez al arrancar. Sin URL, devuelve el error de stat para que
// el caller decida (el servicio arranca igual, solo sin reportes).
func EnsureFont(ctx context.Context, fontPath, fontURL string, c *httpclient.Client) error {
	if _, err := os.Stat(fontPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if fontURL == "" {
		return fmt.Errorf("font asset %s not found and no FONT_URL configured", fontPath)
	}

	raw, err := c.GetBytes(ctx, fontURL)
	if err != nil {
		return fmt.Errorf("downloading font asset: %w", err)
	}
	if err := os.WriteFile(fontPath, raw, 0o644); err != nil {
		return fmt.Errorf("writing font asset: %w", err)
	}
	return nil
}
