package tonclient

// Well-known GraphQL endpoints.
const (
	GraphQLDev  = "https://net.ton.dev/graphql"
	GraphQLTest = "https://testnet.ton.dev/graphql"
	GraphQLMain = "https://main.ton.dev/graphql"
	// GraphQLLocal targets a local TON OS SE. On Windows use 127.0.0.1.
	GraphQLLocal = "http://0.0.0.0/graphql"
)

// Endpoints maps the short names accepted by configuration files and the CLI.
var Endpoints = map[string]string{
	"dev":   GraphQLDev,
	"test":  GraphQLTest,
	"main":  GraphQLMain,
	"local": GraphQLLocal,
}

// DefaultCandidates are the module base names tried by the loader, in order.
var DefaultCandidates = []string{"ton_client", "tonclientjni"}

// Core methods. MethodSetup, MethodVersion and MethodTVMGet have response
// rewrite rules.
const (
	MethodVersion = "version"
	MethodSetup   = "setup"
)

// Contracts.
const (
	MethodContractsRunLocalMsg                 = "contracts.run.local.msg"
	MethodContractsRunLocal                    = "contracts.run.local"
	MethodContractsRunFee                      = "contracts.run.fee"
	MethodTVMGet                               = "tvm.get"
	MethodContractsDeployAddress               = "contracts.deploy.address"
	MethodContractsRunUnknownInput             = "contracts.run.unknown.input"
	MethodContractsRunUnknownOutput            = "contracts.run.unknown.output"
	MethodContractsDeployEncodeUnsignedMessage = "contracts.deploy.encode_unsigned_message"
	MethodContractsResolveError                = "contracts.resolve.error"
	MethodContractsParseMessage                = "contracts.parse.message"
	MethodContractsRunFeeMsg                   = "contracts.run.fee.msg"
	MethodContractsDeployData                  = "contracts.deploy.data"
	MethodContractsDeployMessage               = "contracts.deploy.message"
	MethodContractsEncodeMessageWithSign       = "contracts.encode_message_with_sign"
	MethodContractsSendMessage                 = "contracts.send.message"
	MethodContractsRunMessage                  = "contracts.run.message"
	MethodContractsFunctionID                  = "contracts.function.id"
	MethodContractsProcessMessage              = "contracts.process.message"
	MethodContractsRun                         = "contracts.run"
	MethodContractsProcessTransaction          = "contracts.process.transaction"
	MethodContractsRunOutput                   = "contracts.run.output"
	MethodContractsRunEncodeUnsignedMessage    = "contracts.run.encode_unsigned_message"
	MethodContractsRunBody                     = "contracts.run.body"
	MethodContractsAddressConvert              = "contracts.address.convert"
	MethodContractsDeploy                      = "contracts.deploy"
	MethodContractsWaitTransaction             = "contracts.wait.transaction"
	MethodContractsLoad                        = "contracts.load"
	MethodContractsFindShard                   = "contracts.find.shard"
)

// Crypto.
const (
	MethodCryptoMnemonicDeriveSignKeys       = "crypto.mnemonic.derive.sign.keys"
	MethodCryptoHDKeyXPrvSecret              = "crypto.hdkey.xprv.secret"
	MethodCryptoHDKeyXPrvDerivePath          = "crypto.hdkey.xprv.derive.path"
	MethodCryptoSHA256                       = "crypto.sha256"
	MethodCryptoHDKeyXPrvDerive              = "crypto.hdkey.xprv.derive"
	MethodCryptoNaclSignOpen                 = "crypto.nacl.sign.open"
	MethodCryptoNaclBoxOpen                  = "crypto.nacl.box.open"
	MethodCryptoNaclSecretBox                = "crypto.nacl.secret.box"
	MethodCryptoNaclSignDetached             = "crypto.nacl.sign.detached"
	MethodCryptoNaclSignKeypairFromSecretKey = "crypto.nacl.sign.keypair.fromSecretKey"
	MethodCryptoTONPublicKeyString           = "crypto.ton_public_key_string"
	MethodCryptoNaclSecretBoxOpen            = "crypto.nacl.secret.box.open"
	MethodCryptoNaclSignKeypair              = "crypto.nacl.sign.keypair"
	MethodCryptoNaclSign                     = "crypto.nacl.sign"
	MethodCryptoMathModularPower             = "crypto.math.modularPower"
	MethodCryptoEd25519Keypair               = "crypto.ed25519.keypair"
	MethodCryptoRandomGenerateBytes          = "crypto.random.generateBytes"
	MethodCryptoNaclBoxKeypair               = "crypto.nacl.box.keypair"
	MethodCryptoSHA512                       = "crypto.sha512"
	MethodCryptoMnemonicFromRandom           = "crypto.mnemonic.from.random"
	MethodCryptoMathFactorize                = "crypto.math.factorize"
	MethodCryptoNaclBoxKeypairFromSecretKey  = "crypto.nacl.box.keypair.fromSecretKey"
	MethodCryptoMnemonicVerify               = "crypto.mnemonic.verify"
	MethodCryptoTONCRC16                     = "crypto.ton_crc16"
	MethodCryptoMnemonicFromEntropy          = "crypto.mnemonic.from.entropy"
	MethodCryptoHDKeyXPrvFromMnemonic        = "crypto.hdkey.xprv.from.mnemonic"
	MethodCryptoNaclBox                      = "crypto.nacl.box"
	MethodCryptoHDKeyXPrvPublic              = "crypto.hdkey.xprv.public"
	MethodCryptoScrypt                       = "crypto.scrypt"
	MethodCryptoMnemonicWords                = "crypto.mnemonic.words"
)

// Queries.
const (
	MethodQueriesUnsubscribe = "queries.unsubscribe"
	MethodQueriesSubscribe   = "queries.subscribe"
	MethodQueriesQuery       = "queries.query"
	MethodQueriesGetNext     = "queries.get.next"
	MethodQueriesWaitFor     = "queries.wait.for"
)
