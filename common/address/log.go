// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import log "github.com/33cn/lottery/common/log"

var alog = log.New("module", "address")
