// Package heartbeat runs a job at a fixed rate until its context is
// cancelled.
//
// The first run happens as soon as Run is called; later runs follow the
// ticker. A failing or panicking job is logged and the loop continues, so a
// single bad tick never stops the heartbeat.
//
//	hb, err := heartbeat.New(func(ctx context.Context, now time.Time) error {
//		code, err := totp.Generate(secret, now)
//		if err != nil {
//			return err
//		}
//		log.InfoContext(ctx, "current code", logger.Code(code))
//		return nil
//	}, heartbeat.WithInterval(time.Second), heartbeat.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	go hb.Run(ctx)
package heartbeat
