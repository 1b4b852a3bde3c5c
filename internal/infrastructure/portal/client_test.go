package portal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrpvbrasil/portal-api/internal/infrastructure/portal"
)

func servidorPortal(t *testing.T, status int, corpo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jrpv/boletos/consultar", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "12345678900", in["cpf"])
		w.WriteHeader(status)
		_, _ = w.Write([]byte(corpo))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestConsultarBoletos_DecodificaOEnvelope(t *testing.T) {
	srv := servidorPortal(t, http.StatusOK,
		`{"success":true,"data":[{"_id":"77","pago":"N","pix":{"copia_cola":"00020126..."}}]}`)
	cliente := portal.NewClient(srv.URL, 5*time.Second)

	docs, err := cliente.ConsultarBoletos(context.Background(), "12345678900")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "77", docs[0].ID)
	require.NotNil(t, docs[0].Pix)
	assert.Equal(t, "00020126...", docs[0].Pix.CopiaCola)
}

func TestConsultarBoletos_EnvelopeDeErroViraErro(t *testing.T) {
	srv := servidorPortal(t, http.StatusInternalServerError,
		`{"success":false,"error":"Falha na autenticação do usuário"}`)
	cliente := portal.NewClient(srv.URL, 5*time.Second)

	_, err := cliente.ConsultarBoletos(context.Background(), "12345678900")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Falha na autenticação do usuário")
}
