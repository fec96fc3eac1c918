package evolution_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/evolution"
	"github.com/raphaelgruber/pokedex/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oddishAPI serves the oddish line, which branches at gloom.
func oddishAPI(t *testing.T) *httptest.Server {
	t.Helper()

	ids := map[string]int{"oddish": 43, "gloom": 44, "vileplume": 45, "bellossom": 182}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/pokemon/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")
		for name, id := range ids {
			if key == name || key == fmt.Sprint(id) {
				fmt.Fprintf(w, `{"id": %d, "name": %q, "weight": 54, "height": 5, "types": []}`, id, name)
				return
			}
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("GET /api/v2/pokemon-species/{id}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/18/"}}`)
	})
	mux.HandleFunc("GET /api/v2/evolution-chain/18/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 18, "chain": {
			"species": {"name": "oddish", "url": ""},
			"evolves_to": [{
				"species": {"name": "gloom", "url": ""},
				"evolves_to": [
					{"species": {"name": "vileplume", "url": ""}, "evolves_to": []},
					{"species": {"name": "bellossom", "url": ""}, "evolves_to": []}
				]
			}]
		}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPipelineOverHTTP(t *testing.T) {
	srv := oddishAPI(t)
	base := srv.URL + "/api/v2/"

	c, err := client.New(base)
	require.NoError(t, err)
	repo := repository.New(c, repository.WithWorkers(2))
	r := evolution.NewResolver(repo, evolution.WithBaseURL(base))

	res, err := r.Resolve(context.Background(), 44)
	require.NoError(t, err)
	assert.Equal(t, "gloom", res.Detail.Name)
	assert.Equal(t, 18, res.ChainID)
	assert.Equal(t, []string{"oddish", "gloom", "vileplume", "bellossom"}, names(res.Line))

	id, err := res.Line[3].ID()
	require.NoError(t, err)
	assert.Equal(t, 182, id)
}

func TestPipelineOverHTTPNotFound(t *testing.T) {
	srv := oddishAPI(t)
	c, err := client.New(srv.URL + "/api/v2/")
	require.NoError(t, err)
	r := evolution.NewResolver(repository.New(c))

	_, err = r.ResolveLine(context.Background(), 1)
	assert.ErrorIs(t, err, client.ErrNotFound)
}
