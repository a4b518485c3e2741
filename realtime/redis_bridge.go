package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// When several API instances run behind a load balancer, each holds its own
// websocket connections. The bridge relays every published update through a
// Redis pub/sub topic so all instances deliver it to their local clients.

const redisTopic = "fiesta:realtime"

var (
	redisClient *redis.Client
	instanceID  = uuid.NewString()
)

type bridgeMessage struct {
	Origin string `json:"origin"`
	Update Update `json:"update"`
}

// InitRedisBridge connects the hub to Redis. A failed connection disables
// the bridge, it never prevents local delivery.
func InitRedisBridge(addr, password string) {
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Realtime Redis bridge disabled: %v", err)
		return
	}
	redisClient = client

	go subscribeLoop()
	log.Println("Realtime Redis bridge enabled")
}

func publishRedis(update Update) {
	if redisClient == nil {
		return
	}

	raw, err := json.Marshal(bridgeMessage{Origin: instanceID, Update: update})
	if err != nil {
		log.Printf("Realtime bridge marshal error: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), redisTopic, raw).Err(); err != nil {
		log.Printf("Realtime bridge publish error: %v", err)
	}
}

func subscribeLoop() {
	sub := redisClient.Subscribe(context.Background(), redisTopic)
	for msg := range sub.Channel() {
		var message bridgeMessage
		if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
			log.Printf("Realtime bridge unmarshal error: %v", err)
			continue
		}
		// Updates published by this instance were already delivered locally
		if message.Origin == instanceID {
			continue
		}
		deliver(message.Update)
	}
}
