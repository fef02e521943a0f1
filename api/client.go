package api

// Explorer API Client-
//
// Files:
//   config.go       - Config, defaults, env loading
//   types.go        - Response envelope and typed result records
//   errors.go       - ValidationError, NetworkError, APIError
//   retry.go        - Bounded attempt loop and backoff strategies
//   base.go         - Client struct, NewClient, request plumbing
//   validate.go     - Client-side checks mirroring the explorer's constraints
//   account.go      - module=account actions (balance, txlist, tokentx, ...)
//   block.go        - module=block actions
//   contract.go     - module=contract actions
//   transaction.go  - module=transaction actions
//   logs.go         - module=logs getLogs
//   token.go        - module=token actions
//   stats.go        - module=stats actions
//
// Usage:
//   client, err := api.NewClient(api.DefaultConfig())
//   defer client.Close()
//   resp, err := client.GetBalance(ctx, "0x95426f2bc716022fcf1def006dbc4bb81f5b5164")
//   if err != nil { /* validation or network error */ }
//   if !resp.OK() { /* application error: resp.Message */ }
