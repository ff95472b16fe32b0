package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	automationrpc "dwt/internal/modules/automation/adapter/out/rpc"
	"dwt/internal/modules/automation/domain"
	automationout "dwt/internal/modules/automation/port/out"
)

const defaultStartTimeout = 3 * time.Second

type GRPCHost struct{}

func NewGRPCHost() automationout.PluginHost {
	return &GRPCHost{}
}

func (h *GRPCHost) Signal(ctx context.Context, hook domain.Hook, signal domain.Signal) error {
	client, closeFn, err := h.connect(hook)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.Signal(ctx, &automationrpc.SignalRequest{Signal: string(signal)}); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: hook %s", domain.ErrHookTimeout, hook.Name)
		}
		return fmt.Errorf("signal hook %s: %w", hook.Name, err)
	}
	return nil
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, hook domain.Hook) error {
	client, closeFn, err := h.connect(hook)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.GetMetadata(ctx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) connect(hook domain.Hook) (automationrpc.DwtAutomationClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  automationrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          automationrpc.PluginMap(nil),
		Cmd:              exec.Command(hook.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start automation client: %w", err)
	}
	raw, err := rpcClient.Dispense(automationrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense automation: %w", err)
	}
	typed, ok := raw.(automationrpc.DwtAutomationClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("automation rpc client type mismatch")
	}
	return typed, closeFn, nil
}
