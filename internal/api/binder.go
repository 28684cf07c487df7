package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and rejects malformed payloads with
// a coded 400 instead of echo's default HTTPError.
type Binder struct{}

func NewBinder() *Binder { return &Binder{} }

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}

	if err = sonic.Unmarshal(body, i); err != nil {
		return fmt.Errorf("%w: %v",
			constants.NewCodedError(http.StatusBadRequest, "malformed request body"), err)
	}

	return nil
}

// JSONSerializer plugs sonic into echo's response encoding.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	return enc.Encode(i)
}

func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	return sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i)
}
