// Reference automation plugin. It acknowledges every signal and is mainly
// useful for wiring checks with `dwt automation doctor`.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-plugin"

	automationrpc "dwt/internal/modules/automation/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *automationrpc.Empty) (*automationrpc.Metadata, error) {
	return &automationrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
	}, nil
}

func (s *server) Signal(_ context.Context, in *automationrpc.SignalRequest) (*automationrpc.SignalResponse, error) {
	switch in.Signal {
	case "begin", "end", "notify":
	default:
		return nil, fmt.Errorf("unknown signal: %s", in.Signal)
	}
	line := fmt.Sprintf("%s signal=%s\n", time.Now().UTC().Format(time.RFC3339), in.Signal)
	if path := os.Getenv("DWT_REFERENCE_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			_, _ = f.WriteString(line)
			_ = f.Close()
		}
	}
	return &automationrpc.SignalResponse{Ack: in.Signal}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: automationrpc.HandshakeConfig,
		Plugins:         automationrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
