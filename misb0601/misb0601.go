// Package misb0601 defines the MISB ST 0601 UAS Datalink local set.
// Importing the package registers the standard, so DecodePacket and Scanner
// recognise its packets.
//
// Tags are listed in Registry.  Tags without a registered format, and the
// composite tags not modelled here, decode to klv.Blob and re-encode to the
// same bytes.
package misb0601

import (
	"github.com/gemalto/klv-go"
	"github.com/gemalto/klv-go/misb0102"
	"github.com/gemalto/klv-go/misb1204"
)

var Key = klv.UniversalKey{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
}

var Registry = klv.MustRegistry("ST 0601",
	klv.TagDef{Tag: TagChecksum, Name: "Checksum", Format: klv.UintFormat(2)},
	klv.TagDef{Tag: TagPrecisionTimeStamp, Name: "Precision Time Stamp", Format: klv.UintFormat(8)},
	klv.TagDef{Tag: TagMissionID, Name: "Mission ID", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagPlatformTailNumber, Name: "Platform Tail Number", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagPlatformHeadingAngle, Name: "Platform Heading Angle", Format: unsignedMap(0, 360, 2)},
	klv.TagDef{Tag: TagPlatformPitchAngle, Name: "Platform Pitch Angle", Format: signedMap(-20, 20, 2)},
	klv.TagDef{Tag: TagPlatformRollAngle, Name: "Platform Roll Angle", Format: signedMap(-50, 50, 2)},
	klv.TagDef{Tag: TagPlatformTrueAirspeed, Name: "Platform True Airspeed", Format: unsignedMap(0, 255, 1)},
	klv.TagDef{Tag: TagPlatformIndicatedAirspeed, Name: "Platform Indicated Airspeed", Format: unsignedMap(0, 255, 1)},
	klv.TagDef{Tag: TagPlatformDesignation, Name: "Platform Designation", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagImageSourceSensor, Name: "Image Source Sensor", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagImageCoordinateSystem, Name: "Image Coordinate System", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagSensorLatitude, Name: "Sensor Latitude", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagSensorLongitude, Name: "Sensor Longitude", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagSensorTrueAltitude, Name: "Sensor True Altitude", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagSensorHorizontalFOV, Name: "Sensor Horizontal Field of View", Format: unsignedMap(0, 180, 2)},
	klv.TagDef{Tag: TagSensorVerticalFOV, Name: "Sensor Vertical Field of View", Format: unsignedMap(0, 180, 2)},
	klv.TagDef{Tag: TagSensorRelativeAzimuthAngle, Name: "Sensor Relative Azimuth Angle", Format: unsignedMap(0, 360, 4)},
	klv.TagDef{Tag: TagSensorRelativeElevationAngle, Name: "Sensor Relative Elevation Angle", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagSensorRelativeRollAngle, Name: "Sensor Relative Roll Angle", Format: unsignedMap(0, 360, 4)},
	klv.TagDef{Tag: TagSlantRange, Name: "Slant Range", Format: unsignedMap(0, 5e6, 4)},
	klv.TagDef{Tag: TagTargetWidth, Name: "Target Width", Format: unsignedMap(0, 10000, 2)},
	klv.TagDef{Tag: TagFrameCenterLatitude, Name: "Frame Center Latitude", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFrameCenterLongitude, Name: "Frame Center Longitude", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagFrameCenterElevation, Name: "Frame Center Elevation", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagOffsetCornerLatitudePoint1, Name: "Offset Corner Latitude Point 1", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLongitudePoint1, Name: "Offset Corner Longitude Point 1", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLatitudePoint2, Name: "Offset Corner Latitude Point 2", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLongitudePoint2, Name: "Offset Corner Longitude Point 2", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLatitudePoint3, Name: "Offset Corner Latitude Point 3", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLongitudePoint3, Name: "Offset Corner Longitude Point 3", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLatitudePoint4, Name: "Offset Corner Latitude Point 4", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagOffsetCornerLongitudePoint4, Name: "Offset Corner Longitude Point 4", Format: signedMap(-0.075, 0.075, 2)},
	klv.TagDef{Tag: TagIcingDetected, Name: "Icing Detected", Format: klv.EnumFormat(IcingDetected, klv.UintFormat(1))},
	klv.TagDef{Tag: TagWindDirection, Name: "Wind Direction", Format: unsignedMap(0, 360, 2)},
	klv.TagDef{Tag: TagWindSpeed, Name: "Wind Speed", Format: unsignedMap(0, 100, 1)},
	klv.TagDef{Tag: TagStaticPressure, Name: "Static Pressure", Format: unsignedMap(0, 5000, 2)},
	klv.TagDef{Tag: TagDensityAltitude, Name: "Density Altitude", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagOutsideAirTemperature, Name: "Outside Air Temperature", Format: klv.FloatFormat(klv.IntMap{Lo: -128, Hi: 127, Signed: true, Full: true}, 1)},
	klv.TagDef{Tag: TagTargetLocationLatitude, Name: "Target Location Latitude", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagTargetLocationLongitude, Name: "Target Location Longitude", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagTargetLocationElevation, Name: "Target Location Elevation", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagTargetTrackGateWidth, Name: "Target Track Gate Width", Format: unsignedMap(0, 510, 1)},
	klv.TagDef{Tag: TagTargetTrackGateHeight, Name: "Target Track Gate Height", Format: unsignedMap(0, 510, 1)},
	klv.TagDef{Tag: TagTargetErrorEstimateCE90, Name: "Target Error Estimate - CE90", Format: unsignedMap(0, 4095, 2)},
	klv.TagDef{Tag: TagTargetErrorEstimateLE90, Name: "Target Error Estimate - LE90", Format: unsignedMap(0, 4095, 2)},
	klv.TagDef{Tag: TagGenericFlagData, Name: "Generic Flag Data", Format: klv.UintFormat(1)},
	klv.TagDef{Tag: TagSecurityLocalSet, Name: "Security Local Set", Format: klv.SetFormat(misb0102.Registry)},
	klv.TagDef{Tag: TagDifferentialPressure, Name: "Differential Pressure", Format: unsignedMap(0, 5000, 2)},
	klv.TagDef{Tag: TagPlatformAngleOfAttack, Name: "Platform Angle of Attack", Format: signedMap(-20, 20, 2)},
	klv.TagDef{Tag: TagPlatformVerticalSpeed, Name: "Platform Vertical Speed", Format: signedMap(-180, 180, 2)},
	klv.TagDef{Tag: TagPlatformSideslipAngle, Name: "Platform Sideslip Angle", Format: signedMap(-20, 20, 2)},
	klv.TagDef{Tag: TagAirfieldBarometricPressure, Name: "Airfield Barometric Pressure", Format: unsignedMap(0, 5000, 2)},
	klv.TagDef{Tag: TagAirfieldElevation, Name: "Airfield Elevation", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagRelativeHumidity, Name: "Relative Humidity", Format: unsignedMap(0, 100, 1)},
	klv.TagDef{Tag: TagPlatformGroundSpeed, Name: "Platform Ground Speed", Format: unsignedMap(0, 255, 1)},
	klv.TagDef{Tag: TagGroundRange, Name: "Ground Range", Format: unsignedMap(0, 5e6, 4)},
	klv.TagDef{Tag: TagPlatformFuelRemaining, Name: "Platform Fuel Remaining", Format: unsignedMap(0, 10000, 2)},
	klv.TagDef{Tag: TagPlatformCallSign, Name: "Platform Call Sign", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagWeaponLoad, Name: "Weapon Load", Format: klv.UintFormat(2)},
	klv.TagDef{Tag: TagWeaponFired, Name: "Weapon Fired", Format: klv.UintFormat(1)},
	klv.TagDef{Tag: TagLaserPRFCode, Name: "Laser PRF Code", Format: klv.UintFormat(2)},
	klv.TagDef{Tag: TagSensorFOVName, Name: "Sensor Field of View Name", Format: klv.EnumFormat(SensorFOVName, klv.UintFormat(1))},
	klv.TagDef{Tag: TagPlatformMagneticHeading, Name: "Platform Magnetic Heading", Format: unsignedMap(0, 360, 2)},
	klv.TagDef{Tag: TagVersionNumber, Name: "UAS Datalink LS Version Number", Format: klv.UintFormat(1)},
	klv.TagDef{Tag: TagAlternatePlatformLatitude, Name: "Alternate Platform Latitude", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagAlternatePlatformLongitude, Name: "Alternate Platform Longitude", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagAlternatePlatformAltitude, Name: "Alternate Platform Altitude", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagAlternatePlatformName, Name: "Alternate Platform Name", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagAlternatePlatformHeading, Name: "Alternate Platform Heading", Format: unsignedMap(0, 360, 2)},
	klv.TagDef{Tag: TagEventStartTime, Name: "Event Start Time - UTC", Format: klv.UintFormat(8)},
	klv.TagDef{Tag: TagRVTLocalSet, Name: "RVT Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagVMTILocalSet, Name: "VMTI Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagSensorEllipsoidHeight, Name: "Sensor Ellipsoid Height", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagAlternatePlatformEllipsoidHeight, Name: "Alternate Platform Ellipsoid Height", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagOperationalMode, Name: "Operational Mode", Format: klv.EnumFormat(OperationalMode, klv.UintFormat(1))},
	klv.TagDef{Tag: TagFrameCenterHeightAboveEllipsoid, Name: "Frame Center Height Above Ellipsoid", Format: unsignedMap(-900, 19000, 2)},
	klv.TagDef{Tag: TagSensorNorthVelocity, Name: "Sensor North Velocity", Format: signedMap(-327, 327, 2)},
	klv.TagDef{Tag: TagSensorEastVelocity, Name: "Sensor East Velocity", Format: signedMap(-327, 327, 2)},
	klv.TagDef{Tag: TagImageHorizonPixelPack, Name: "Image Horizon Pixel Pack", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagFullCornerLatitudePoint1, Name: "Corner Latitude Point 1 (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullCornerLongitudePoint1, Name: "Corner Longitude Point 1 (Full)", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagFullCornerLatitudePoint2, Name: "Corner Latitude Point 2 (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullCornerLongitudePoint2, Name: "Corner Longitude Point 2 (Full)", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagFullCornerLatitudePoint3, Name: "Corner Latitude Point 3 (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullCornerLongitudePoint3, Name: "Corner Longitude Point 3 (Full)", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagFullCornerLatitudePoint4, Name: "Corner Latitude Point 4 (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullCornerLongitudePoint4, Name: "Corner Longitude Point 4 (Full)", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagFullPlatformPitchAngle, Name: "Platform Pitch Angle (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullPlatformRollAngle, Name: "Platform Roll Angle (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullPlatformAngleOfAttack, Name: "Platform Angle of Attack (Full)", Format: signedMap(-90, 90, 4)},
	klv.TagDef{Tag: TagFullPlatformSideslipAngle, Name: "Platform Sideslip Angle (Full)", Format: signedMap(-180, 180, 4)},
	klv.TagDef{Tag: TagMIISCoreIdentifier, Name: "MIIS Core Identifier", Format: misb1204.Format()},
	klv.TagDef{Tag: TagSARMotionImageryLocalSet, Name: "SAR Motion Imagery Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagTargetWidthExtended, Name: "Target Width Extended", Format: imap(0, 1.5e6, 3)},
	klv.TagDef{Tag: TagRangeImageLocalSet, Name: "Range Image Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagGeoregistrationLocalSet, Name: "Geo-Registration Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagCompositeImagingLocalSet, Name: "Composite Imaging Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagSegmentLocalSet, Name: "Segment Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagAmendLocalSet, Name: "Amend Local Set", Format: klv.SetFormat(nil)},
	klv.TagDef{Tag: TagSDCCFLP, Name: "SDCC-FLP", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagDensityAltitudeExtended, Name: "Density Altitude Extended", Format: imap(-900, 40000, 3)},
	klv.TagDef{Tag: TagSensorEllipsoidHeightExtended, Name: "Sensor Ellipsoid Height Extended", Format: imap(-900, 40000, 3)},
	klv.TagDef{Tag: TagAlternatePlatformEllipsoidHeightExtended, Name: "Alternate Platform Ellipsoid Height Extended", Format: imap(-900, 40000, 3)},
	klv.TagDef{Tag: TagStreamDesignator, Name: "Stream Designator", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagOperationalBase, Name: "Operational Base", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagBroadcastSource, Name: "Broadcast Source", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagRangeToRecoveryLocation, Name: "Range To Recovery Location", Format: imap(0, 21000, 3)},
	klv.TagDef{Tag: TagTimeAirborne, Name: "Time Airborne", Format: klv.UintFormat(0)},
	klv.TagDef{Tag: TagPropulsionUnitSpeed, Name: "Propulsion Unit Speed", Format: klv.UintFormat(0)},
	klv.TagDef{Tag: TagPlatformCourseAngle, Name: "Platform Course Angle", Format: imap(0, 360, 2)},
	klv.TagDef{Tag: TagAltitudeAboveGroundLevel, Name: "Altitude Above Ground Level (AGL)", Format: imap(-900, 40000, 3)},
	klv.TagDef{Tag: TagRadarAltimeter, Name: "Radar Altimeter", Format: imap(-900, 40000, 3)},
	klv.TagDef{Tag: TagControlCommand, Name: "Control Command", Format: controlCommandFormat},
	klv.TagDef{Tag: TagControlCommandVerificationList, Name: "Control Command Verification List", Format: verificationListFormat},
	klv.TagDef{Tag: TagSensorAzimuthRate, Name: "Sensor Azimuth Rate", Format: imap(-1000, 1000, 2)},
	klv.TagDef{Tag: TagSensorElevationRate, Name: "Sensor Elevation Rate", Format: imap(-1000, 1000, 2)},
	klv.TagDef{Tag: TagSensorRollRate, Name: "Sensor Roll Rate", Format: imap(-1000, 1000, 2)},
	klv.TagDef{Tag: TagOnboardMIStoragePercentFull, Name: "On-board MI Storage Percent Full", Format: imap(0, 100, 2)},
	klv.TagDef{Tag: TagActiveWavelengthList, Name: "Active Wavelength List", Format: wavelengthListFormat},
	klv.TagDef{Tag: TagCountryCodes, Name: "Country Codes", Format: countryCodesFormat},
	klv.TagDef{Tag: TagNumberOfNAVSATsInView, Name: "Number of NAVSATs in View", Format: klv.UintFormat(1)},
	klv.TagDef{Tag: TagPositioningMethodSource, Name: "Positioning Method Source", Format: klv.UintFormat(1)},
	klv.TagDef{Tag: TagPlatformStatus, Name: "Platform Status", Format: klv.EnumFormat(PlatformStatus, klv.UintFormat(1))},
	klv.TagDef{Tag: TagSensorControlMode, Name: "Sensor Control Mode", Format: klv.EnumFormat(SensorControlMode, klv.UintFormat(1))},
	klv.TagDef{Tag: TagSensorFrameRatePack, Name: "Sensor Frame Rate Pack", Format: frameRateFormat},
	klv.TagDef{Tag: TagWavelengthsList, Name: "Wavelengths List", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagTargetID, Name: "Target ID", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagAirbaseLocations, Name: "Airbase Locations", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagTakeoffTime, Name: "Take-off Time", Format: klv.UintFormat(0)},
	klv.TagDef{Tag: TagTransmissionFrequency, Name: "Transmission Frequency", Format: imap(1, 99999, 3)},
	klv.TagDef{Tag: TagOnboardMIStorageCapacity, Name: "On-board MI Storage Capacity", Format: klv.UintFormat(0)},
	klv.TagDef{Tag: TagZoomPercentage, Name: "Zoom Percentage", Format: imap(0, 100, 2)},
	klv.TagDef{Tag: TagCommunicationsMethod, Name: "Communications Method", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagLeapSeconds, Name: "Leap Seconds", Format: klv.IntFormat(0)},
	klv.TagDef{Tag: TagCorrectionOffset, Name: "Correction Offset", Format: klv.IntFormat(0)},
	klv.TagDef{Tag: TagPayloadList, Name: "Payload List", Format: payloadListFormat},
	klv.TagDef{Tag: TagActivePayloads, Name: "Active Payloads", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagWeaponsStores, Name: "Weapons Stores", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagWaypointList, Name: "Waypoint List", Format: klv.BlobFormat()},
	klv.TagDef{Tag: TagViewDomain, Name: "View Domain", Format: klv.BlobFormat()},
)

var Standard = &klv.Standard{
	Name:        "ST 0601",
	Key:         Key,
	Registry:    Registry,
	ChecksumTag: TagChecksum,
	HasChecksum: true,
}

func init() {
	klv.RegisterStandard(Standard)
}
