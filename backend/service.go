package backend

import (
	"context"
	"fmt"
	"time"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/conf"
	"marketscan/log"
	"marketscan/node"
	"marketscan/service"
)

func Run(chainUrl string, thread int64, interval time.Duration) {
	client, err := node.Dial(chainUrl)
	if err != nil {
		panic(err)
	}
	chainId, err := client.ChainId(context.Background())
	if err != nil {
		panic(err)
	}
	if chainId != conf.ChainId {
		panic(fmt.Sprintf("chain id mismatch: node %v, conf %v", chainId, conf.ChainId))
	}
	taskCh := make(chan types.Uint64, thread)
	parsedCh := make(chan *model.Parsed, thread)
	go taskLoop(client, thread, interval, taskCh, parsedCh)
	go mainLoop(client, thread, interval, taskCh, parsedCh)
}

func mainLoop(client *node.Client, thread int64, interval time.Duration, taskCh chan<- types.Uint64, parsedCh <-chan *model.Parsed) {
	number := types.Uint64(service.NextBlock())
	cache := make(map[types.Uint64]*model.Parsed)
	taskNum := int64(0)
	log.Infof("using %v coroutines, starting data analysis from block %v", thread, number)
	for {
		max, err := client.BlockNumber(context.Background())
		if err != nil {
			log.Warnf("get block height error: %v", err)
		}
		if err != nil || (max < number && taskNum == 0) {
			time.Sleep(interval)
		}
		for number <= max || taskNum > 0 {
			for number <= max && taskNum < thread {
				taskCh <- number
				taskNum++
				number++
			}
			parsed := <-parsedCh
			taskNum--
			cache[parsed.Block.Number] = parsed
			for i := types.Uint64(service.NextBlock()); cache[i] != nil; i++ {
				if err := service.BlockInsert(cache[i]); err != nil {
					log.Errorf("block %v insert error: %v", i, err)
					break
				}
				delete(cache, i)
			}
		}
	}
}

func taskLoop(client *node.Client, thread int64, interval time.Duration, taskCh <-chan types.Uint64, parsedCh chan<- *model.Parsed) {
	for ; thread > 0; thread-- {
		go func() {
			for number := range taskCh {
				for {
					parsed, err := decode(client, context.Background(), number)
					if err != nil {
						if err != node.NotFound {
							log.Warnf("block %v parsing error: %v", number, err)
						}
						time.Sleep(interval)
					} else {
						parsedCh <- parsed
						break
					}
				}
			}
		}()
	}
}
