package misb0601

import (
	"github.com/gemalto/klv-go"
)

var IcingDetected = &klv.EnumSet{
	SetName: "Icing Detected",
	Values: map[uint64]string{
		0: "Detector Off",
		1: "No Icing Detected",
		2: "Icing Detected",
	},
}

var SensorFOVName = &klv.EnumSet{
	SetName: "Sensor Field of View Name",
	Values: map[uint64]string{
		0: "Ultranarrow",
		1: "Narrow",
		2: "Medium",
		3: "Wide",
		4: "Ultrawide",
		5: "Narrow Medium",
		6: "2x Ultranarrow",
		7: "4x Ultranarrow",
		8: "Continuous Zoom",
	},
}

var OperationalMode = &klv.EnumSet{
	SetName: "Operational Mode",
	Values: map[uint64]string{
		0: "Other",
		1: "Operational",
		2: "Training",
		3: "Exercise",
		4: "Maintenance",
		5: "Test",
	},
}

var PlatformStatus = &klv.EnumSet{
	SetName: "Platform Status",
	Values: map[uint64]string{
		0:  "Active",
		1:  "Pre-flight",
		2:  "Pre-flight-taxiing",
		3:  "Run-up",
		4:  "Take-off",
		5:  "Ingress",
		6:  "Manual operation",
		7:  "Automated-orbit",
		8:  "Transitioning",
		9:  "Egress",
		10: "Landing",
		11: "Landed-taxiing",
		12: "Landed-parked",
	},
}

var SensorControlMode = &klv.EnumSet{
	SetName: "Sensor Control Mode",
	Values: map[uint64]string{
		0: "Off",
		1: "Home Position",
		2: "Uncontrolled",
		3: "Manual Control",
		4: "Calibrating",
		5: "Auto - Holding Position",
		6: "Auto - Tracking",
	},
}

// PayloadType is the type of each entry of the Payload List.
var PayloadType = &klv.EnumSet{
	SetName: "Payload Type",
	Values: map[uint64]string{
		0: "Electro Optical MI Sensor",
		1: "LIDAR",
		2: "RADAR",
		3: "SIGINT",
		4: "SAR",
	},
}
