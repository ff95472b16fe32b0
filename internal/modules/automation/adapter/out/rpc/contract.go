package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "dwt"
	serviceName       = "dwt.automation.v1.DwtAutomation"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodSignal      = "/" + serviceName + "/Signal"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "DWT_AUTOMATION",
	MagicCookieValue: "dwt",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type SignalRequest struct {
	Signal string `json:"signal"`
}

type SignalResponse struct {
	Ack string `json:"ack"`
}

type DwtAutomationServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Signal(ctx context.Context, in *SignalRequest) (*SignalResponse, error)
}

type DwtAutomationClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Signal(ctx context.Context, in *SignalRequest) (*SignalResponse, error)
}

type dwtAutomationClient struct {
	conn *grpc.ClientConn
}

func NewDwtAutomationClient(conn *grpc.ClientConn) DwtAutomationClient {
	return &dwtAutomationClient{conn: conn}
}

func (c *dwtAutomationClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dwtAutomationClient) Signal(ctx context.Context, in *SignalRequest) (*SignalResponse, error) {
	out := &SignalResponse{}
	if err := c.conn.Invoke(ctx, methodSignal, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterDwtAutomationServer(server grpc.ServiceRegistrar, impl DwtAutomationServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*DwtAutomationServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Signal",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &SignalRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Signal(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSignal}
					handler := func(ctx context.Context, req any) (any, error) {
						request, ok := req.(*SignalRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Signal(ctx, request)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/automation-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl DwtAutomationServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterDwtAutomationServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewDwtAutomationClient(conn), nil
}

func PluginMap(impl DwtAutomationServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
