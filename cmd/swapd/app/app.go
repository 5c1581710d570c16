/*
Package app links together all the various components
to construct the swapd node.
*/
package app

import (
	"context"
	"path/filepath"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/commands/server"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store/iavl"
	"github.com/iov-one/tokenswap/store/pebble"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/rent"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported in abci.Info.
const Name = "swapd"

// Authenticator returns the authentication of transaction signers.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// TokenAuthenticator additionally accepts the escrow custody grants, so
// escrow handlers can move the tokens they hold.
func TokenAuthenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, escrow.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching token and escrow messages.
func Router() *app.Router {
	r := app.NewRouter()
	rc := rent.NewController()
	tokens := token.NewController(TokenAuthenticator(), rc)
	token.RegisterRoutes(r, Authenticator(), tokens, escrow.NewRecipientGuard())
	escrow.RegisterRoutes(r, Authenticator(), tokens, rc)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/escrows", "/mints", "/tokens", "/wallets",
// "/deposits" and "/auth"
func QueryRouter() tokenswap.QueryRouter {
	r := tokenswap.NewQueryRouter()
	r.RegisterAll(
		escrow.RegisterQuery,
		token.RegisterQuery,
		rent.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializer loads the genesis state. Rent is loaded first, as token
// accounts are charged storage deposits.
func Initializer() tokenswap.Initializer {
	return tokenswap.ChainInitializers(
		rent.Initializer{},
		token.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() tokenswap.Handler {
	return Chain().WithHandler(Router())
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h tokenswap.Handler, tx tokenswap.TxDecoder,
	kv tokenswap.CommitKVStore, debug bool) (*app.BaseApp, error) {
	store, err := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	if err != nil {
		return nil, err
	}
	store.WithInit(Initializer())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore opens the state database of the given kind under home.
func CommitKVStore(home, kind string) (tokenswap.CommitKVStore, error) {
	dir := filepath.Join(home, "data")
	switch kind {
	case server.DBMemory:
		return iavl.NewMemCommitStore(), nil
	case server.DBIAVL:
		return iavl.NewCommitStore(dir, "swap")
	case server.DBPebble:
		return pebble.NewCommitStore(filepath.Join(dir, "swap.pebble"))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown database %q", kind)
	}
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, opts server.StartOptions, logger log.Logger) (abci.Application, error) {
	kv, err := CommitKVStore(home, opts.DB)
	if err != nil {
		return nil, err
	}
	application, err := Application(Name, Stack(), TxDecoder, kv, opts.Debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(logger)
	return application, nil
}
