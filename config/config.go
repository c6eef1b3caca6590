package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type consumers struct {
	ProductSaverGroup string `mapstructure:"product_saver_group"`
	CatalogGateGroup  string `mapstructure:"catalog_gate_group"`
}

type topics struct {
	ProductsIngest     string `mapstructure:"products_ingest"`
	ProductsStore      string `mapstructure:"products_store"`
	ProductStatusTable string `mapstructure:"product_status_table"`
	StatusStream       string `mapstructure:"status_stream"`
	OrdersPlaced       string `mapstructure:"orders_placed"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type checkout struct {
	WhatsAppPhone string `mapstructure:"whatsapp_phone"`
	Currency      string `mapstructure:"currency"`
	DefaultLocale string `mapstructure:"default_locale"`
}

type archive struct {
	HDFSAddr  string `mapstructure:"hdfs_addr"`
	OrdersDir string `mapstructure:"orders_dir"`
}

type analytics struct {
	SparkAddr string `mapstructure:"spark_addr"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Checkout       checkout   `mapstructure:"checkout"`
	Broker         broker     `mapstructure:"broker"`
	Archive        archive    `mapstructure:"archive"`
	Analytics      analytics  `mapstructure:"analytics"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	Checkout:
	WhatsAppPhone=%q
	Currency=%q
	DefaultLocale=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		ProductsIngest=%q
		ProductsStore=%q
		ProductStatusTable=%q
		StatusStream=%q
		OrdersPlaced=%q
	Consumers:
		ProductSaverGroup=%q
		CatalogGateGroup=%q

	Archive:
	HDFSAddr=%q
	OrdersDir=%q

	Analytics:
	SparkAddr=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.Checkout.WhatsAppPhone,
		c.Checkout.Currency,
		c.Checkout.DefaultLocale,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.ProductsIngest,
		c.Broker.Topics.ProductsStore,
		c.Broker.Topics.ProductStatusTable,
		c.Broker.Topics.StatusStream,
		c.Broker.Topics.OrdersPlaced,
		c.Broker.Consumers.ProductSaverGroup,
		c.Broker.Consumers.CatalogGateGroup,
		c.Archive.HDFSAddr,
		c.Archive.OrdersDir,
		c.Analytics.SparkAddr,
	)
}
