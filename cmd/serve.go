package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/pngme/constants"
	"github.com/jsphweid/pngme/model"
	"github.com/jsphweid/pngme/seal"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $PNGME_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chunk operations over HTTP",
	Long: `Serves POST /inspect, /encode, /decode and /remove. Each takes the
PNG file as the request body; type and message go in the query string and a
passphrase in the X-Passphrase header.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetListenAddr()
		}
		return serve(cmd.Context(), addr)
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/inspect", HandleInspect).Methods(http.MethodPost)
	router.HandleFunc("/encode", HandleEncode).Methods(http.MethodPost).Queries("type", "{type}", "message", "{message}")
	router.HandleFunc("/decode", HandleDecode).Methods(http.MethodPost).Queries("type", "{type}")
	router.HandleFunc("/remove", HandleRemove).Methods(http.MethodPost).Queries("type", "{type}")
	return cors.Default().Handler(router)
}

func serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func HandleInspect(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	overview, err := Overview(data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, overview)
}

func HandleEncode(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	res, err := Encode(data, vars["type"], []byte(vars["message"]), r.Header.Get("X-Passphrase"))
	if err != nil {
		writeError(w, err)
		return
	}
	writePNG(w, res)
}

func HandleDecode(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	typeText := mux.Vars(r)["type"]
	message, err := DecodeMessage(data, typeText, r.Header.Get("X-Passphrase"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, model.DecodeResponse{Type: typeText, Message: message})
}

func HandleRemove(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	res, removed, err := Remove(data, mux.Vars(r)["type"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("X-Removed-Chunk", removed.String())
	writePNG(w, res)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.GetMaxBodySize()))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return data, true
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, model.ErrChunkNotFound):
		status = http.StatusNotFound
	case model.IsFormatError(err):
		status = http.StatusBadRequest
	case errors.Is(err, seal.ErrCannotOpen), errors.Is(err, seal.ErrNoPassphrase):
		status = http.StatusForbidden
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	default:
		logger.Error("request failed", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}
