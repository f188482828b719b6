package protocol

import "fmt"

// Command identifies a printer operation on the wire. The codes are fixed by
// the device firmware: 0 through 48, contiguous and stable.
type Command byte

const (
	CmdPrintData         Command = 0
	CmdPrintDataCompress Command = 1
	CmdFirmwareData      Command = 2
	CmdUSBUpdateFirmware Command = 3
	CmdGetVersion        Command = 4
	CmdSentVersion       Command = 5
	CmdGetModel          Command = 6
	CmdSentModel         Command = 7
	CmdGetBTMac          Command = 8
	CmdSentBTMac         Command = 9
	CmdGetSN             Command = 10
	CmdSentSN            Command = 11
	CmdGetStatus         Command = 12
	CmdSentStatus        Command = 13
	CmdGetVoltage        Command = 14
	CmdSentVoltage       Command = 15
	CmdGetBatStatus      Command = 16
	CmdSentBatStatus     Command = 17
	CmdGetTemp           Command = 18
	CmdSentTemp          Command = 19
	CmdSetFactoryStatus  Command = 20
	CmdGetFactoryStatus  Command = 21
	CmdSentFactoryStatus Command = 22
	CmdSentBTStatus      Command = 23
	CmdSetCRCKey         Command = 24
	CmdSetHeatDensity    Command = 25
	CmdFeedLine          Command = 26
	CmdPrintTestPage     Command = 27
	CmdGetHeatDensity    Command = 28
	CmdSentHeatDensity   Command = 29
	CmdSetPowerDownTime  Command = 30
	CmdGetPowerDownTime  Command = 31
	CmdSentPowerDownTime Command = 32
	CmdFeedToHeadLine    Command = 33
	CmdPrintDefaultPara  Command = 34
	CmdGetBoardVersion   Command = 35
	CmdSentBoardVersion  Command = 36
	CmdGetHWInfo         Command = 37
	CmdSentHWInfo        Command = 38
	CmdSetMaxGapLength   Command = 39
	CmdGetMaxGapLength   Command = 40
	CmdSentMaxGapLength  Command = 41
	CmdGetPaperType      Command = 42
	CmdSentPaperType     Command = 43
	CmdSetPaperType      Command = 44
	CmdGetCountryName    Command = 45
	CmdSentCountryName   Command = 46
	CmdDisconnectBT      Command = 47
	CmdMax               Command = 48
)

// CmdUnrecognized is the sentinel returned by CommandFromByte for byte values
// outside the command table. It never appears on the wire.
const CmdUnrecognized Command = 0xFF

// commandNames maps each wire code to its firmware name.
var commandNames = [...]string{
	CmdPrintData:         "PRINT_DATA",
	CmdPrintDataCompress: "PRINT_DATA_COMPRESS",
	CmdFirmwareData:      "FIRMWARE_DATA",
	CmdUSBUpdateFirmware: "USB_UPDATE_FIRMWARE",
	CmdGetVersion:        "GET_VERSION",
	CmdSentVersion:       "SENT_VERSION",
	CmdGetModel:          "GET_MODEL",
	CmdSentModel:         "SENT_MODEL",
	CmdGetBTMac:          "GET_BT_MAC",
	CmdSentBTMac:         "SENT_BT_MAC",
	CmdGetSN:             "GET_SN",
	CmdSentSN:            "SENT_SN",
	CmdGetStatus:         "GET_STATUS",
	CmdSentStatus:        "SENT_STATUS",
	CmdGetVoltage:        "GET_VOLTAGE",
	CmdSentVoltage:       "SENT_VOLTAGE",
	CmdGetBatStatus:      "GET_BAT_STATUS",
	CmdSentBatStatus:     "SENT_BAT_STATUS",
	CmdGetTemp:           "GET_TEMP",
	CmdSentTemp:          "SENT_TEMP",
	CmdSetFactoryStatus:  "SET_FACTORY_STATUS",
	CmdGetFactoryStatus:  "GET_FACTORY_STATUS",
	CmdSentFactoryStatus: "SENT_FACTORY_STATUS",
	CmdSentBTStatus:      "SENT_BT_STATUS",
	CmdSetCRCKey:         "SET_CRC_KEY",
	CmdSetHeatDensity:    "SET_HEAT_DENSITY",
	CmdFeedLine:          "FEED_LINE",
	CmdPrintTestPage:     "PRINT_TEST_PAGE",
	CmdGetHeatDensity:    "GET_HEAT_DENSITY",
	CmdSentHeatDensity:   "SENT_HEAT_DENSITY",
	CmdSetPowerDownTime:  "SET_POWER_DOWN_TIME",
	CmdGetPowerDownTime:  "GET_POWER_DOWN_TIME",
	CmdSentPowerDownTime: "SENT_POWER_DOWN_TIME",
	CmdFeedToHeadLine:    "FEED_TO_HEAD_LINE",
	CmdPrintDefaultPara:  "PRINT_DEFAULT_PARA",
	CmdGetBoardVersion:   "GET_BOARD_VERSION",
	CmdSentBoardVersion:  "SENT_BOARD_VERSION",
	CmdGetHWInfo:         "GET_HW_INFO",
	CmdSentHWInfo:        "SENT_HW_INFO",
	CmdSetMaxGapLength:   "SET_MAX_GAP_LENGTH",
	CmdGetMaxGapLength:   "GET_MAX_GAP_LENGTH",
	CmdSentMaxGapLength:  "SENT_MAX_GAP_LENGTH",
	CmdGetPaperType:      "GET_PAPER_TYPE",
	CmdSentPaperType:     "SENT_PAPER_TYPE",
	CmdSetPaperType:      "SET_PAPER_TYPE",
	CmdGetCountryName:    "GET_COUNTRY_NAME",
	CmdSentCountryName:   "SENT_COUNTRY_NAME",
	CmdDisconnectBT:      "DISCONNECT_BT_CMD",
	CmdMax:               "MAX_CMD",
}

// CommandFromByte maps a wire byte to its Command. Unknown bytes map to
// CmdUnrecognized; the lookup is total and never fails.
func CommandFromByte(b byte) Command {
	if b <= byte(CmdMax) {
		return Command(b)
	}
	return CmdUnrecognized
}

// Known reports whether c is in the command table.
func (c Command) Known() bool {
	return c <= CmdMax
}

func (c Command) String() string {
	if c.Known() {
		return commandNames[c]
	}
	return fmt.Sprintf("UNRECOGNIZED(0x%02X)", byte(c))
}
