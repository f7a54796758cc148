package misb0601

import (
	"github.com/gemalto/klv-go"
)

const (
	TagChecksum                                 klv.Tag = 1
	TagPrecisionTimeStamp                       klv.Tag = 2
	TagMissionID                                klv.Tag = 3
	TagPlatformTailNumber                       klv.Tag = 4
	TagPlatformHeadingAngle                     klv.Tag = 5
	TagPlatformPitchAngle                       klv.Tag = 6
	TagPlatformRollAngle                        klv.Tag = 7
	TagPlatformTrueAirspeed                     klv.Tag = 8
	TagPlatformIndicatedAirspeed                klv.Tag = 9
	TagPlatformDesignation                      klv.Tag = 10
	TagImageSourceSensor                        klv.Tag = 11
	TagImageCoordinateSystem                    klv.Tag = 12
	TagSensorLatitude                           klv.Tag = 13
	TagSensorLongitude                          klv.Tag = 14
	TagSensorTrueAltitude                       klv.Tag = 15
	TagSensorHorizontalFOV                      klv.Tag = 16
	TagSensorVerticalFOV                        klv.Tag = 17
	TagSensorRelativeAzimuthAngle               klv.Tag = 18
	TagSensorRelativeElevationAngle             klv.Tag = 19
	TagSensorRelativeRollAngle                  klv.Tag = 20
	TagSlantRange                               klv.Tag = 21
	TagTargetWidth                              klv.Tag = 22
	TagFrameCenterLatitude                      klv.Tag = 23
	TagFrameCenterLongitude                     klv.Tag = 24
	TagFrameCenterElevation                     klv.Tag = 25
	TagOffsetCornerLatitudePoint1               klv.Tag = 26
	TagOffsetCornerLongitudePoint1              klv.Tag = 27
	TagOffsetCornerLatitudePoint2               klv.Tag = 28
	TagOffsetCornerLongitudePoint2              klv.Tag = 29
	TagOffsetCornerLatitudePoint3               klv.Tag = 30
	TagOffsetCornerLongitudePoint3              klv.Tag = 31
	TagOffsetCornerLatitudePoint4               klv.Tag = 32
	TagOffsetCornerLongitudePoint4              klv.Tag = 33
	TagIcingDetected                            klv.Tag = 34
	TagWindDirection                            klv.Tag = 35
	TagWindSpeed                                klv.Tag = 36
	TagStaticPressure                           klv.Tag = 37
	TagDensityAltitude                          klv.Tag = 38
	TagOutsideAirTemperature                    klv.Tag = 39
	TagTargetLocationLatitude                   klv.Tag = 40
	TagTargetLocationLongitude                  klv.Tag = 41
	TagTargetLocationElevation                  klv.Tag = 42
	TagTargetTrackGateWidth                     klv.Tag = 43
	TagTargetTrackGateHeight                    klv.Tag = 44
	TagTargetErrorEstimateCE90                  klv.Tag = 45
	TagTargetErrorEstimateLE90                  klv.Tag = 46
	TagGenericFlagData                          klv.Tag = 47
	TagSecurityLocalSet                         klv.Tag = 48
	TagDifferentialPressure                     klv.Tag = 49
	TagPlatformAngleOfAttack                    klv.Tag = 50
	TagPlatformVerticalSpeed                    klv.Tag = 51
	TagPlatformSideslipAngle                    klv.Tag = 52
	TagAirfieldBarometricPressure               klv.Tag = 53
	TagAirfieldElevation                        klv.Tag = 54
	TagRelativeHumidity                         klv.Tag = 55
	TagPlatformGroundSpeed                      klv.Tag = 56
	TagGroundRange                              klv.Tag = 57
	TagPlatformFuelRemaining                    klv.Tag = 58
	TagPlatformCallSign                         klv.Tag = 59
	TagWeaponLoad                               klv.Tag = 60
	TagWeaponFired                              klv.Tag = 61
	TagLaserPRFCode                             klv.Tag = 62
	TagSensorFOVName                            klv.Tag = 63
	TagPlatformMagneticHeading                  klv.Tag = 64
	TagVersionNumber                            klv.Tag = 65
	TagAlternatePlatformLatitude                klv.Tag = 67
	TagAlternatePlatformLongitude               klv.Tag = 68
	TagAlternatePlatformAltitude                klv.Tag = 69
	TagAlternatePlatformName                    klv.Tag = 70
	TagAlternatePlatformHeading                 klv.Tag = 71
	TagEventStartTime                           klv.Tag = 72
	TagRVTLocalSet                              klv.Tag = 73
	TagVMTILocalSet                             klv.Tag = 74
	TagSensorEllipsoidHeight                    klv.Tag = 75
	TagAlternatePlatformEllipsoidHeight         klv.Tag = 76
	TagOperationalMode                          klv.Tag = 77
	TagFrameCenterHeightAboveEllipsoid          klv.Tag = 78
	TagSensorNorthVelocity                      klv.Tag = 79
	TagSensorEastVelocity                       klv.Tag = 80
	TagImageHorizonPixelPack                    klv.Tag = 81
	TagFullCornerLatitudePoint1                 klv.Tag = 82
	TagFullCornerLongitudePoint1                klv.Tag = 83
	TagFullCornerLatitudePoint2                 klv.Tag = 84
	TagFullCornerLongitudePoint2                klv.Tag = 85
	TagFullCornerLatitudePoint3                 klv.Tag = 86
	TagFullCornerLongitudePoint3                klv.Tag = 87
	TagFullCornerLatitudePoint4                 klv.Tag = 88
	TagFullCornerLongitudePoint4                klv.Tag = 89
	TagFullPlatformPitchAngle                   klv.Tag = 90
	TagFullPlatformRollAngle                    klv.Tag = 91
	TagFullPlatformAngleOfAttack                klv.Tag = 92
	TagFullPlatformSideslipAngle                klv.Tag = 93
	TagMIISCoreIdentifier                       klv.Tag = 94
	TagSARMotionImageryLocalSet                 klv.Tag = 95
	TagTargetWidthExtended                      klv.Tag = 96
	TagRangeImageLocalSet                       klv.Tag = 97
	TagGeoregistrationLocalSet                  klv.Tag = 98
	TagCompositeImagingLocalSet                 klv.Tag = 99
	TagSegmentLocalSet                          klv.Tag = 100
	TagAmendLocalSet                            klv.Tag = 101
	TagSDCCFLP                                  klv.Tag = 102
	TagDensityAltitudeExtended                  klv.Tag = 103
	TagSensorEllipsoidHeightExtended            klv.Tag = 104
	TagAlternatePlatformEllipsoidHeightExtended klv.Tag = 105
	TagStreamDesignator                         klv.Tag = 106
	TagOperationalBase                          klv.Tag = 107
	TagBroadcastSource                          klv.Tag = 108
	TagRangeToRecoveryLocation                  klv.Tag = 109
	TagTimeAirborne                             klv.Tag = 110
	TagPropulsionUnitSpeed                      klv.Tag = 111
	TagPlatformCourseAngle                      klv.Tag = 112
	TagAltitudeAboveGroundLevel                 klv.Tag = 113
	TagRadarAltimeter                           klv.Tag = 114
	TagControlCommand                           klv.Tag = 115
	TagControlCommandVerificationList           klv.Tag = 116
	TagSensorAzimuthRate                        klv.Tag = 117
	TagSensorElevationRate                      klv.Tag = 118
	TagSensorRollRate                           klv.Tag = 119
	TagOnboardMIStoragePercentFull              klv.Tag = 120
	TagActiveWavelengthList                     klv.Tag = 121
	TagCountryCodes                             klv.Tag = 122
	TagNumberOfNAVSATsInView                    klv.Tag = 123
	TagPositioningMethodSource                  klv.Tag = 124
	TagPlatformStatus                           klv.Tag = 125
	TagSensorControlMode                        klv.Tag = 126
	TagSensorFrameRatePack                      klv.Tag = 127
	TagWavelengthsList                          klv.Tag = 128
	TagTargetID                                 klv.Tag = 129
	TagAirbaseLocations                         klv.Tag = 130
	TagTakeoffTime                              klv.Tag = 131
	TagTransmissionFrequency                    klv.Tag = 132
	TagOnboardMIStorageCapacity                 klv.Tag = 133
	TagZoomPercentage                           klv.Tag = 134
	TagCommunicationsMethod                     klv.Tag = 135
	TagLeapSeconds                              klv.Tag = 136
	TagCorrectionOffset                         klv.Tag = 137
	TagPayloadList                              klv.Tag = 138
	TagActivePayloads                           klv.Tag = 139
	TagWeaponsStores                            klv.Tag = 140
	TagWaypointList                             klv.Tag = 141
	TagViewDomain                               klv.Tag = 142
)
