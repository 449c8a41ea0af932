// Package realtime streams market data over the exchange websocket.
//
// A Feed owns one connection. It authenticates with the same key pair
// and signature scheme as the REST client, replays subscriptions after
// a reconnect, and delivers table updates on a bounded channel.
//
// # Basic Usage
//
//	feed, err := realtime.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer feed.Close()
//
//	if err := feed.Subscribe(realtime.Topic(realtime.TableTrade, "XBTUSD")); err != nil {
//	    return err
//	}
//
//	for msg := range feed.Messages() {
//	    trades, err := msg.Trades()
//	    ...
//	}
//
// The Messages channel closes when the feed shuts down; Err reports
// whether that was a clean Close or a failed reconnect.
package realtime
