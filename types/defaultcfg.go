// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var defaultCfgString = `
Title="local"

[log]
loglevel = "info"
logConsoleLevel = "info"
logFile = ""
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
name = "lottery"
driver = "leveldb"
dbPath = "datadir"
dbCache = 128

[consensus]
name = "solo"
genesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
genesisAmount = 10000000000000000
genesisBlockTime = 1514533394
blockIntervalMs = 1000

[rpc]
jrpcBindAddr = "localhost:8801"
whitelist = ["*"]
rateLimit = 0
rateBurst = 0

[metrics]
enableMetrics = false
dataEmitMode = "log"
duration = 10000

[exec]
enableStat = false

[exec.sub.lottery]
ticketPrice = 1000000000000
roundDuration = 10
ticketLength = 32
randomSource = "block"
`
