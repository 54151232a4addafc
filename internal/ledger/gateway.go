package ledger

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/bureauchain/diplomachain/internal/config"
)

// Connection bundles the gRPC channel and the Fabric Gateway session behind
// the Transactor interface. One connection is shared by every operation for
// the lifetime of the process.
type Connection struct {
	grpcConn *grpc.ClientConn
	gateway  *client.Gateway
	contract *client.Contract
}

// Connect dials the gateway peer over TLS, establishes a gateway session
// with the configured X.509 identity, and selects the diploma contract on
// the configured channel.
func Connect(cfg *config.Config) (*Connection, error) {
	creds, err := credentials.NewClientTLSFromFile(cfg.Fabric.TLSCertPath, cfg.Fabric.GatewayPeer)
	if err != nil {
		return nil, fmt.Errorf("failed to load peer TLS certificate: %w", err)
	}

	grpcConn, err := grpc.NewClient(cfg.Fabric.PeerEndpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	id, err := newIdentity(cfg.Fabric.CertPath, cfg.Fabric.MSPID)
	if err != nil {
		grpcConn.Close()
		return nil, err
	}

	sign, err := newSign(cfg.Fabric.KeyDirPath)
	if err != nil {
		grpcConn.Close()
		return nil, err
	}

	gateway, err := client.Connect(
		id,
		client.WithSign(sign),
		client.WithClientConnection(grpcConn),
		client.WithEvaluateTimeout(config.FabricTimeout(cfg.Fabric.EvaluateTimeout)),
		client.WithEndorseTimeout(config.FabricTimeout(cfg.Fabric.EndorseTimeout)),
		client.WithSubmitTimeout(config.FabricTimeout(cfg.Fabric.SubmitTimeout)),
		client.WithCommitStatusTimeout(config.FabricTimeout(cfg.Fabric.CommitStatusTimeout)),
	)
	if err != nil {
		grpcConn.Close()
		return nil, fmt.Errorf("failed to connect to gateway: %w", err)
	}

	network := gateway.GetNetwork(cfg.Fabric.ChannelName)
	contract := network.GetContract(cfg.Fabric.ChaincodeName)

	return &Connection{
		grpcConn: grpcConn,
		gateway:  gateway,
		contract: contract,
	}, nil
}

// Evaluate runs a read-only transaction on a gateway peer.
func (c *Connection) Evaluate(ctx context.Context, name string, args ...string) ([]byte, error) {
	return c.contract.EvaluateWithContext(ctx, name, client.WithArguments(args...))
}

// Submit endorses, submits, and waits for the commit of a state-changing
// transaction.
func (c *Connection) Submit(ctx context.Context, name string, args ...string) ([]byte, error) {
	return c.contract.SubmitWithContext(ctx, name, client.WithArguments(args...))
}

// Close releases the gateway session and the underlying gRPC channel.
func (c *Connection) Close() error {
	if c.gateway != nil {
		if err := c.gateway.Close(); err != nil {
			c.grpcConn.Close()
			return err
		}
	}
	return c.grpcConn.Close()
}

// newIdentity reads the client certificate and wraps it in a gateway
// identity for the configured MSP.
func newIdentity(certPath, mspID string) (*identity.X509Identity, error) {
	pem, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client certificate: %w", err)
	}

	cert, err := identity.CertificateFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client certificate: %w", err)
	}

	return identity.NewX509Identity(mspID, cert)
}

// newSign loads the first private key from the MSP keystore directory.
func newSign(keyDirPath string) (identity.Sign, error) {
	entries, err := os.ReadDir(keyDirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no private key found in %s", keyDirPath)
	}

	pem, err := os.ReadFile(path.Join(keyDirPath, entries[0].Name()))
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	key, err := identity.PrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return identity.NewPrivateKeySign(key)
}
