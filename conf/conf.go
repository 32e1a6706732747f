package conf

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// default allocation
var (
	ChainId                    int64 = 1
	ServerAddr                       = ":3000"
	Interval                   int64 = 10
	Thread                     int64 = 8
	InfuraId                         = ""
	MysqlDsn                         = "root:123456@tcp(127.0.0.1:3306)/market"
	ResetDB                          = false
	StartBlock                 int64 = 0
	FeesCollectorCutPerMillion int64 = 25000 //DAO fee share of each sale, per million
)

// globally available object instantiated from config
var (
	ChainUrl string   //chain node address
	Chain    *Network //contract addresses of the configured chain
)

func init() {
	// set log printout to stdout instead of stderr
	log.SetOutput(os.Stdout)

	// read configuration to override default value
	setConf()

	// check configuration
	if Interval < 1 {
		panic("conf.Interval < 1")
	}
	if FeesCollectorCutPerMillion < 0 || FeesCollectorCutPerMillion > 1000000 {
		panic("conf.FeesCollectorCutPerMillion out of range")
	}

	Chain = networks[ChainId]
	if Chain == nil {
		panic(fmt.Sprintf("Unsupported chainId: %v", ChainId))
	}
	ChainUrl = Chain.Url
	if strings.Contains(ChainUrl, "%s") {
		if InfuraId == "" {
			log.Println("INFURA_ID not set, node requests will be rejected")
		}
		ChainUrl = fmt.Sprintf(ChainUrl, InfuraId)
	}
}

func setConf() {
	err := godotenv.Load("market.env")
	if err != nil {
		log.Println("Failed to load environment variables from .env file,", err)
	}

	// Parse the basic configuration of the server
	if chainId := os.Getenv("CHAIN_ID"); chainId != "" {
		ChainId, err = strconv.ParseInt(chainId, 0, 64)
		if err != nil {
			panic(err)
		}
	}
	if serverAddr := os.Getenv("SERVER_ADDR"); serverAddr != "" {
		ServerAddr = serverAddr
	}
	if interval := os.Getenv("INTERVAL"); interval != "" {
		Interval, err = strconv.ParseInt(interval, 0, 64)
		if err != nil {
			panic(err)
		}
	}
	if thread := os.Getenv("THREAD"); thread != "" {
		Thread, err = strconv.ParseInt(thread, 0, 64)
		if err != nil {
			panic(err)
		}
	}
	if infuraId := os.Getenv("INFURA_ID"); infuraId != "" {
		InfuraId = infuraId
	}
	if mysqlDsn := os.Getenv("MYSQL_DSN"); mysqlDsn != "" {
		MysqlDsn = mysqlDsn
	}
	if resetDB := os.Getenv("RESET_DB"); resetDB != "" {
		ResetDB = resetDB == "true"
	}
	if startBlock := os.Getenv("START_BLOCK"); startBlock != "" {
		StartBlock, err = strconv.ParseInt(startBlock, 0, 64)
		if err != nil {
			panic(err)
		}
	}
	if cut := os.Getenv("FEES_COLLECTOR_CUT"); cut != "" {
		FeesCollectorCutPerMillion, err = strconv.ParseInt(cut, 0, 64)
		if err != nil {
			panic(err)
		}
	}
}
