package dictionary

import "time"

const SignalChLen = 1

const ShutDownDuration = time.Second * 5

const LogFileTimeLayout = "20060102_150405"
