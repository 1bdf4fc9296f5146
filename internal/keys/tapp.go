package keys

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const getAppSecretKeyMethod = "/tapp_service.TappService/GetAppSecretKey"

// The daemon's request and response messages are described in code rather
// than generated, the service has a single RPC and only four fields matter.
var (
	tappOnce sync.Once
	tappReq  protoreflect.MessageDescriptor
	tappResp protoreflect.MessageDescriptor
	tappErr  error
)

func tappDescriptors() (req, resp protoreflect.MessageDescriptor, err error) {
	tappOnce.Do(func() {
		field := func(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
			return &descriptorpb.FieldDescriptorProto{
				Name:   proto.String(name),
				Number: proto.Int32(num),
				Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				Type:   typ.Enum(),
			}
		}
		fdp := &descriptorpb.FileDescriptorProto{
			Name:    proto.String("tapp_service/tapp_service.proto"),
			Package: proto.String("tapp_service"),
			Syntax:  proto.String("proto3"),
			MessageType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("GetAppSecretKeyRequest"),
					Field: []*descriptorpb.FieldDescriptorProto{
						field("app_id", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						field("key_type", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						field("x25519", 3, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					},
				},
				{
					Name: proto.String("GetAppSecretKeyResponse"),
					Field: []*descriptorpb.FieldDescriptorProto{
						field("success", 1, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
						field("message", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						field("private_key", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
						field("eth_address", 4, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
					},
				},
			},
		}
		fd, err := protodesc.NewFile(fdp, new(protoregistry.Files))
		if err != nil {
			tappErr = fmt.Errorf("keys: build tapp descriptors: %w", err)
			return
		}
		tappReq = fd.Messages().ByName("GetAppSecretKeyRequest")
		tappResp = fd.Messages().ByName("GetAppSecretKeyResponse")
	})
	return tappReq, tappResp, tappErr
}

// FetchFromTapp asks the tapp-daemon at target for the application's
// Ethereum key.
func FetchFromTapp(ctx context.Context, target, appID string, opts ...grpc.DialOption) (*Signer, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("keys: grpc dial %s: %w", target, err)
	}
	defer conn.Close()

	reqDesc, respDesc, err := tappDescriptors()
	if err != nil {
		return nil, err
	}
	req := dynamicpb.NewMessage(reqDesc)
	req.Set(reqDesc.Fields().ByName("app_id"), protoreflect.ValueOfString(appID))
	req.Set(reqDesc.Fields().ByName("key_type"), protoreflect.ValueOfString("ethereum"))
	req.Set(reqDesc.Fields().ByName("x25519"), protoreflect.ValueOfBool(true))

	resp := dynamicpb.NewMessage(respDesc)
	if err := conn.Invoke(ctx, getAppSecretKeyMethod, req, resp); err != nil {
		return nil, fmt.Errorf("keys: GetAppSecretKey: %w", err)
	}

	fields := respDesc.Fields()
	if !resp.Get(fields.ByName("success")).Bool() {
		return nil, fmt.Errorf("keys: GetAppSecretKey failed: %s", resp.Get(fields.ByName("message")).String())
	}
	priv := resp.Get(fields.ByName("private_key")).Bytes()
	if len(priv) == 0 {
		return nil, fmt.Errorf("keys: GetAppSecretKey returned empty private key")
	}

	key, err := crypto.ToECDSA(priv)
	if err != nil {
		return nil, fmt.Errorf("keys: tapp private key: %w", err)
	}
	s := NewSigner(key)

	// The daemon reports the address it derived; refuse a key that disagrees.
	if reported := resp.Get(fields.ByName("eth_address")).Bytes(); len(reported) == common.AddressLength {
		if common.BytesToAddress(reported) != s.Address() {
			return nil, fmt.Errorf("keys: tapp address 0x%s does not match key address %s",
				strings.ToLower(hex.EncodeToString(reported)), s.Address().Hex())
		}
	}
	return s, nil
}
