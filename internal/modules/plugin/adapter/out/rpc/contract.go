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
	PluginMapKey          = "inward"
	serviceName           = "inward.plugin.v1.InwardPlugin"
	jsonCodecName         = "json"
	methodGetMetadata     = "/" + serviceName + "/GetMetadata"
	methodGenerateInsight = "/" + serviceName + "/GenerateInsight"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "INWARD_PLUGIN",
	MagicCookieValue: "inward",
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
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type InsightRequest struct {
	ReportJSON string `json:"report_json"`
	Tone       string `json:"tone"`
}

type InsightResponse struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Suggestions []string `json:"suggestions"`
}

type InwardPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	GenerateInsight(ctx context.Context, in *InsightRequest) (*InsightResponse, error)
}

type InwardPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	GenerateInsight(ctx context.Context, in *InsightRequest) (*InsightResponse, error)
}

type inwardPluginClient struct {
	conn *grpc.ClientConn
}

func NewInwardPluginClient(conn *grpc.ClientConn) InwardPluginClient {
	return &inwardPluginClient{conn: conn}
}

func (c *inwardPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inwardPluginClient) GenerateInsight(ctx context.Context, in *InsightRequest) (*InsightResponse, error) {
	out := &InsightResponse{}
	if err := c.conn.Invoke(ctx, methodGenerateInsight, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterInwardPluginServer(server grpc.ServiceRegistrar, impl InwardPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*InwardPluginServer)(nil),
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
				MethodName: "GenerateInsight",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &InsightRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GenerateInsight(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGenerateInsight}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*InsightRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GenerateInsight(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/plugin-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl InwardPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterInwardPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewInwardPluginClient(conn), nil
}

func PluginMap(impl InwardPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
